package handlers

type CreateTweetParam struct {
	Content string `json:"content"`
}

type UserTweetsParam struct {
	UserId string `path:"userId"`
}

type UpdateTweetParam struct {
	TweetId string `path:"tweetId"`
	Content string `json:"content"`
}

type TweetIdParam struct {
	TweetId string `path:"tweetId"`
}
