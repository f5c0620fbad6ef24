package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The admin UI maps these codes to display messages.

const (
	// ==================== Admin auth (AUTH_) ====================
	AuthUnauthorized    = "AUTH_UNAUTHORIZED"
	AuthInvalidPassword = "AUTH_INVALID_PASSWORD"
	AuthTokenExpired    = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid    = "AUTH_TOKEN_INVALID"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidPrice = "VALIDATION_INVALID_PRICE"
	ValidationCodeTooLong  = "VALIDATION_CODE_TOO_LONG"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (PRODUCT_ / CATEGORY_) ====================
	ProductNotFound    = "PRODUCT_NOT_FOUND"
	CategoryNotFound   = "CATEGORY_NOT_FOUND"
	CategoryNameExists = "CATEGORY_NAME_EXISTS"
	CategoryInUse      = "CATEGORY_IN_USE"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Cart (CART_) ====================
	CartIDMissing = "CART_ID_MISSING"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"
	InternalStorageError = "INTERNAL_STORAGE_ERROR"
)
