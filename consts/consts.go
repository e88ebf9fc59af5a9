package consts

var SERVICE_NAME_CREDS = "cryptocore-creds-manager"
var CREDS_FILE_PATH = ".cryptocore.creds.json"
var LOGS_FILE_PATH = "cryptocore.logs.json"
var LOGS_MAX_FILE_SIZE int64 = 15 * 1024 * 1024 // bytes
var LOGS_MAX_TIME int64 = 2419200               // seconds, 28 days
