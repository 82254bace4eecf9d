package log

const (
	KEY_APP_NAME = "app"
	KEY_TAG      = "tag"
	KEY_PROCESS  = "process"
	KEY_CONFIG   = "config"

	KEY_REQUEST_ID     = "requestId"
	KEY_REQUEST        = "request"
	KEY_HEADER         = "header"
	KEY_BODY           = "body"
	KEY_REQUEST_HOST   = "host"
	KEY_REQUEST_IP     = "requesterIP"
	KEY_REQUEST_METHOD = "requestMethod"
	KEY_REQUEST_URI    = "requestURI"
	KEY_REQUEST_URL    = "requestURL"

	KEY_CART_ITEMS   = "cartItems"
	KEY_ITEM_ID      = "itemId"
	KEY_ITEM_NAME    = "itemName"
	KEY_QUANTITY     = "quantity"
	KEY_DELTA        = "delta"
	KEY_PRICE        = "price"
	KEY_SNAPSHOT     = "snapshot"
	KEY_STORAGE_KEY  = "storageKey"
	KEY_STORAGE_PATH = "storagePath"
	KEY_CHANNEL      = "channel"
	KEY_MESSAGE      = "notification"
)
