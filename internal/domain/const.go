package domain

const (
	// TOKEN_DECIMALS is the fixed number of decimals for every event token
	TOKEN_DECIMALS uint8 = 18

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// DEFAULT_DERIVATION_PATH is the BIP44 path used for Ethereum-compatible accounts
	DEFAULT_DERIVATION_PATH = "m/44'/60'/0'/0/0"

	// DEFAULT_QR_SCHEME is the URI scheme embedded in vendor payment QR codes
	DEFAULT_QR_SCHEME = "banka"
)
