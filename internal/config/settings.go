package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Settings is the resolved runtime configuration of one wkfport invocation.
type Settings struct {
	DatabaseType     string `validate:"required,oneof=POSTGRES MYSQL SQLLITE"`
	DatabaseURL      string `validate:"required_unless=DatabaseType SQLLITE"`
	SqlLiteFileName  string `validate:"required_if=DatabaseType SQLLITE"`
	ModuleName       string
	Output           string
	DescriptorFormat string `validate:"required,oneof=xml yaml"`
	ModelPackage     string `validate:"required"`
	WebPort          int    `validate:"gt=0,lt=65536"`
	LogLevel         string
}

// LoadSettings reads every setting from the environment, applying defaults.
func LoadSettings() Settings {
	return Settings{
		DatabaseType:     GetSystemSettingString(DATABASE_TYPE),
		DatabaseURL:      GetSystemSettingString(DATABASE_URL),
		SqlLiteFileName:  GetSystemSettingString(DATABASE_SQLLITE_FILE_NAME),
		ModuleName:       GetSystemSettingString(EXPORT_MODULE),
		Output:           GetSystemSettingString(EXPORT_OUTPUT),
		DescriptorFormat: GetSystemSettingString(DESCRIPTOR_FORMAT),
		ModelPackage:     GetSystemSettingString(MODEL_PACKAGE),
		WebPort:          GetSystemSettingInteger(SERVER_WEB_PORT),
		LogLevel:         GetSystemSettingString(LOG_LEVEL),
	}
}

// Validate checks the settings needed to reach the store.
// MySQL URLs must start with mysql:// and carry parseTime=true.
func (s Settings) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if s.DatabaseType == DATABASE_TYPE_MYSQL {
		if !strings.HasPrefix(s.DatabaseURL, "mysql://") {
			return fmt.Errorf("invalid settings: %s must start with 'mysql://' for MySQL", DATABASE_URL)
		}
		if !strings.Contains(s.DatabaseURL, "parseTime=true") {
			return fmt.Errorf("invalid settings: %s must contain 'parseTime=true' for MySQL", DATABASE_URL)
		}
	}
	return nil
}

// OutputPath returns the configured output, or <module>-wkf.zip in the working directory.
func (s Settings) OutputPath() string {
	if s.Output != "" {
		return s.Output
	}
	return "./" + s.ModuleName + "-wkf.zip"
}
