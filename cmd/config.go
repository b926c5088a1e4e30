package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	KafkaHost          string
	KafkaTopic         string
	RedisAddr          string
	RedisPassword      string
	JWTSecret          string
	PaymentProviderURL string
	PaymentProviderKey string
	StorageDir         string

	// Marketplace tunables. Empty or invalid values fall back to the
	// domain defaults.
	DisputeWindowDays string
	PayoutDelayDays   string
	CommissionRate    string
	TriangleLimit     string
	PreviewLimit      string
}
