package recipescaler

// ScalerConfig configures the local entry point.
type ScalerConfig struct {
	ArtifactsRecipesPath string `env:"ARTIFACTS_RECIPES_PATH,default=artifacts/recipes.json"`
	Workers              int    `env:"SCALER_WORKERS,default=0"`
	SlackWebhookURL      string `env:"SLACK_WEBHOOK_URL"`
	SlackChannel         string `env:"SLACK_CHANNEL,default=#recipes"`
}

// S3Config locates the recipe collection for the Lambda handler.
type S3Config struct {
	Bucket     string `env:"ARTIFACTS_S3_BUCKET,required"`
	RecipesKey string `env:"ARTIFACTS_RECIPES_S3_KEY,default=recipes.json"`
}
