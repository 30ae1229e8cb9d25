package model

// Tables lists every model migrated at startup.
func Tables() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Tweet{},
		&Playlist{},
		&PlaylistVideo{},
		&Subscription{},
	}
}
