package db

type Config struct {
	Type        string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	Path        string
	MaxIdleConn int
	MaxOpenConn int

	// Pool lifetimes in minutes; zero leaves the driver default.
	ConnMaxLifetime int
	ConnMaxIdleTime int
}
