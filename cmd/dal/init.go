package dal

import (
	dashboarddb "VideoTube.com/cmd/dashboard/dal/db"
	interactiondb "VideoTube.com/cmd/interaction/dal/db"
	playlistdb "VideoTube.com/cmd/playlist/dal/db"
	relationdb "VideoTube.com/cmd/relation/dal/db"
	tweetdb "VideoTube.com/cmd/tweet/dal/db"
	userdb "VideoTube.com/cmd/user/dal/db"
	videodb "VideoTube.com/cmd/video/dal/db"
	"gorm.io/gorm"
)

// Init shares one connection pool across every data access package.
func Init(conn *gorm.DB) {
	userdb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	tweetdb.Init(conn)
	playlistdb.Init(conn)
	relationdb.Init(conn)
	dashboarddb.Init(conn)
}
