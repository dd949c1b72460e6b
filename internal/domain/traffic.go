package domain

import "time"

// SiteTraffic representa o tráfego do site em um dia
type SiteTraffic struct {
	Date               string  `mapstructure:"date"`
	InboundTraffic     int     `mapstructure:"inbound_traffic"`
	UniqueVisitors     int     `mapstructure:"unique_visitors"`
	AvgSessionDuration float64 `mapstructure:"avg_session_duration"`

	Day time.Time `mapstructure:"-"`
}
