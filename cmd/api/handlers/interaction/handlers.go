package handlers

type ListCommentParam struct {
	VideoId string `path:"videoId"`
	Page    string `query:"page"`
	Limit   string `query:"limit"`
}

type CreateCommentParam struct {
	VideoId string `json:"videoId"`
	Text    string `json:"text"`
}

type UpdateCommentParam struct {
	CommentId string `json:"commentId"`
	Text      string `json:"text"`
}

type DeleteCommentParam struct {
	CommentId string `json:"commentId"`
}

type VideoLikeParam struct {
	VideoId string `path:"videoId"`
}

type CommentLikeParam struct {
	CommentId string `path:"commentId"`
}

type TweetLikeParam struct {
	TweetId string `path:"tweetId"`
}
