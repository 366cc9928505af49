package constants

const (
	SERVICE_NAME                = "banka-api"
	MIN_PASSWORD_LENGTH         = 6
	MAX_NAME_LENGTH             = 120
	MAX_TOKEN_SUPPLY            = int64(1_000_000_000_000)
	MAX_PURCHASE_AMOUNT         = int64(1_000_000)
	MAX_PRICE_CENTS             = int64(100_000_000)
	DEFAULT_PUBLIC_EVENTS_LIMIT = 50
	MAX_PUBLIC_EVENTS_LIMIT     = 200
	VENDOR_DISPLAY_PREFIX_LEN   = 8
)
