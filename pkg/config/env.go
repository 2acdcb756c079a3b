package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"
	EnvMongoTransactions = "MONGO_TRANSACTIONS"

	EnvRedisURL      = "REDIS_URL"
	EnvHotelCacheTTL = "HOTEL_CACHE_TTL"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvAuthJWTSecret        = "AUTH_JWT_SECRET"
	EnvAuthJWTPublicKeyFile = "AUTH_JWT_PUBLIC_KEY_FILE"
	EnvAuthJWTIssuer        = "AUTH_JWT_ISSUER"

	EnvAdminUserIDs    = "ADMIN_USER_IDS"
	EnvAdminSource     = "ADMIN_SOURCE"
	EnvAdminSecretCode = "ADMIN_SECRET_CODE"

	EnvPricingMode             = "PRICING_MODE"
	EnvStrictStatusTransitions = "STRICT_STATUS_TRANSITIONS"

	EnvKafkaEnabled      = "KAFKA_ENABLED"
	EnvKafkaBookingTopic = "KAFKA_BOOKING_TOPIC"
)
