package config

// Error messages
const (
	ErrMsgParseEnv      = "parse env"
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgAPIKeyMissing = "API_KEY environment variable must be set for security"
)

// Warning messages
const (
	WarnMsgExampleAPIKey = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgDebugInProd   = "LOG_LEVEL is debug in a production environment"
)

// ExampleAPIKey is the placeholder shipped in .env.example.
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"
