package handlers

type CreatePlaylistParam struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Videos      []string `json:"videos"`
}

type UserPlaylistsParam struct {
	UserId string `path:"userId"`
}

type PlaylistIdParam struct {
	PlaylistId string `path:"playlistId"`
}

type PlaylistVideoParam struct {
	VideoId    string `path:"videoId"`
	PlaylistId string `path:"playlistId"`
}

type UpdatePlaylistParam struct {
	PlaylistId  string `path:"playlistId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
