package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(DATABASE_TYPE, "SQLLITE")
	t.Setenv(EXPORT_MODULE, "sales-flow")

	s := LoadSettings()

	assert.Equal(t, "SQLLITE", s.DatabaseType)
	assert.Equal(t, "./wkfport.db", s.SqlLiteFileName)
	assert.Equal(t, "xml", s.DescriptorFormat)
	assert.Equal(t, "com.axelor.apps", s.ModelPackage)
	assert.Equal(t, 8080, s.WebPort)
	assert.Equal(t, "./sales-flow-wkf.zip", s.OutputPath())
	require.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	base := Settings{
		DatabaseType:     DATABASE_TYPE_POSTGRES,
		DatabaseURL:      "postgres://u:p@localhost/db",
		DescriptorFormat: DESCRIPTOR_FORMAT_XML,
		ModelPackage:     "com.axelor.apps",
		WebPort:          8080,
	}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{name: "valid postgres", mutate: func(s *Settings) {}},
		{name: "unknown database type", mutate: func(s *Settings) { s.DatabaseType = "ORACLE" }, wantErr: true},
		{name: "postgres without url", mutate: func(s *Settings) { s.DatabaseURL = "" }, wantErr: true},
		{name: "sqlite without url", mutate: func(s *Settings) {
			s.DatabaseType = DATABASE_TYPE_SQLLITE
			s.DatabaseURL = ""
			s.SqlLiteFileName = "x.db"
		}},
		{name: "unknown descriptor format", mutate: func(s *Settings) { s.DescriptorFormat = "json" }, wantErr: true},
		{name: "mysql without scheme", mutate: func(s *Settings) {
			s.DatabaseType = DATABASE_TYPE_MYSQL
			s.DatabaseURL = "u:p@tcp(localhost)/db?parseTime=true"
		}, wantErr: true},
		{name: "mysql without parseTime", mutate: func(s *Settings) {
			s.DatabaseType = DATABASE_TYPE_MYSQL
			s.DatabaseURL = "mysql://u:p@tcp(localhost)/db"
		}, wantErr: true},
		{name: "valid mysql", mutate: func(s *Settings) {
			s.DatabaseType = DATABASE_TYPE_MYSQL
			s.DatabaseURL = "mysql://u:p@tcp(localhost)/db?parseTime=true"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
