package handlers

type ChannelParam struct {
	ChannelId string `path:"channelId"`
}

type SubscriberParam struct {
	SubscriberId string `path:"subscriberId"`
}
