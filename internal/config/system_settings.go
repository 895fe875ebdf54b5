package config

import (
	"os"
	"strconv"
)

const DATABASE_TYPE = "WKFPORT_DATABASE_TYPE"
const DATABASE_URL = "WKFPORT_DATABASE_URL"
const DATABASE_SQLLITE_FILE_NAME = "WKFPORT_DATABASE_SQLLITE_FILE_NAME"
const EXPORT_MODULE = "WKFPORT_EXPORT_MODULE"           //module the exported package is generated for
const EXPORT_OUTPUT = "WKFPORT_EXPORT_OUTPUT"           //zip file, or a directory when not ending in .zip
const DESCRIPTOR_FORMAT = "WKFPORT_DESCRIPTOR_FORMAT"   //xml or yaml
const MODEL_PACKAGE = "WKFPORT_MODEL_PACKAGE"           //root package of promoted models in the destination
const SERVER_WEB_PORT = "WKFPORT_SERVER_WEB_PORT"
const LOG_LEVEL = "WKFPORT_LOG_LEVEL"

const DATABASE_TYPE_POSTGRES = "POSTGRES"
const DATABASE_TYPE_MYSQL = "MYSQL"
const DATABASE_TYPE_SQLLITE = "SQLLITE"

const DESCRIPTOR_FORMAT_XML = "xml"
const DESCRIPTOR_FORMAT_YAML = "yaml"

const DEFAULT_SQLLITE_FILE_NAME = "./wkfport.db"
const DEFAULT_MODEL_PACKAGE = "com.axelor.apps"
const DEFAULT_SERVER_WEB_PORT = 8080
const DEFAULT_LOG_LEVEL = "info"

func GetSystemSettingInteger(settingKey string) int {
	val := GetSystemSettingString(settingKey)
	if val != "" {
		intValue, _ := strconv.Atoi(val)
		return intValue
	}
	return 0
}

func GetSystemSettingString(settingKey string) string {
	val := os.Getenv(settingKey)
	if val != "" {
		return val
	}
	if settingKey == DATABASE_SQLLITE_FILE_NAME {
		return DEFAULT_SQLLITE_FILE_NAME
	}
	if settingKey == DESCRIPTOR_FORMAT {
		return DESCRIPTOR_FORMAT_XML
	}
	if settingKey == MODEL_PACKAGE {
		return DEFAULT_MODEL_PACKAGE
	}
	if settingKey == SERVER_WEB_PORT {
		return strconv.Itoa(DEFAULT_SERVER_WEB_PORT)
	}
	if settingKey == LOG_LEVEL {
		return DEFAULT_LOG_LEVEL
	}
	return ""
}
