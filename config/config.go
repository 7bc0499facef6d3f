package config

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"fern-api"`
	Port                          int      `env:"PORT" env-default:"3004"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"30"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	ReadHeaderTimeoutSeconds      int      `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" env-default:"10"`
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST"`

	// Spreadsheet feeds
	SheetBaseURL        string `env:"SHEET_BASE_URL" env-default:"https://docs.google.com"`
	SheetID             string `env:"SHEET_ID" env-default:""`
	SheetMappingProfile string `env:"SHEET_MAPPING_PROFILE" env-default:"forms-v2"`
	FetchTimeoutSeconds int    `env:"SHEET_FETCH_TIMEOUT_SECONDS" env-default:"20"`

	// Per feed sheet tab ids
	NewProjectGID     string `env:"SHEET_GID_NEW_PROJECT" env-default:""`
	VersionUpgradeGID string `env:"SHEET_GID_VERSION_UPGRADE" env-default:""`
	EstimationGID     string `env:"SHEET_GID_ESTIMATION" env-default:""`
	ApprovalGID       string `env:"SHEET_GID_APPROVAL" env-default:""`
	DeliveryGID       string `env:"SHEET_GID_DELIVERY" env-default:""`
	FeedbackGID       string `env:"SHEET_GID_FEEDBACK" env-default:""`

	// Trend summaries
	TrendsEnabled bool   `env:"TRENDS_ENABLED" env-default:"false"`
	TrendsBaseURL string `env:"TRENDS_BASE_URL" env-default:"https://api.openai.com/v1"`
	TrendsAPIKey  string `env:"TRENDS_API_KEY" env-default:""`
	TrendsModel   string `env:"TRENDS_MODEL" env-default:"gpt-4o-mini"`

	// Tracing
	TracingEnabled      bool   `env:"TRACING_ENABLED" env-default:"false"`
	TracingExporter     string `env:"TRACING_EXPORTER" env-default:"console"`
	TracingOTLPEndpoint string `env:"TRACING_OTLP_ENDPOINT" env-default:"localhost:4317"`
	TracingOTLPProtocol string `env:"TRACING_OTLP_PROTOCOL" env-default:"grpc"`
	TracingOTLPInsecure bool   `env:"TRACING_OTLP_INSECURE" env-default:"true"`
}
