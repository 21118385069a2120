package platform

const (
	EnvLayersDir   = "CNB_LAYERS_DIR"
	EnvLogLevel    = "CNB_LOG_LEVEL"
	EnvNoColor     = "CNB_NO_COLOR" // defaults to false
	EnvPlanPath    = "CNB_PLAN_PATH"
	EnvPlatformDir = "CNB_PLATFORM_DIR"
	EnvStackID     = "CNB_STACK_ID"
)
