package entities

// Rejection reasons carried in error metadata under the "reason" key.
const (
	ReasonOutOfBounds          = "OUT_OF_BOUNDS"
	ReasonPositionOccupied     = "POSITION_OCCUPIED"
	ReasonIncompatibleSlot     = "INCOMPATIBLE_SLOT"
	ReasonItemNotFound         = "ITEM_NOT_FOUND"
	ReasonInvalidRotation      = "INVALID_ROTATION"
	ReasonInvalidDimensions    = "INVALID_DIMENSIONS"
	ReasonArrayLengthMismatch  = "ARRAY_LENGTH_MISMATCH"
	ReasonArithmeticOverflow   = "ARITHMETIC_OVERFLOW"
	ReasonPendingRequestExists = "PENDING_REQUEST_EXISTS"
	ReasonNoPendingRequest     = "NO_PENDING_REQUEST"
	ReasonNonceMismatch        = "NONCE_MISMATCH"
	ReasonInvalidResult        = "INVALID_RESULT"
	ReasonResultExpired        = "RESULT_EXPIRED"
	ReasonResultFromFuture     = "RESULT_FROM_FUTURE"
	ReasonInvalidSignature     = "INVALID_SIGNATURE"
	ReasonNoFishingRod         = "NO_FISHING_ROD_EQUIPPED"
	ReasonInsufficientBait     = "INSUFFICIENT_BAIT"
	ReasonInvalidBait          = "INVALID_BAIT"
	ReasonInvalidSpecies       = "INVALID_SPECIES"
	ReasonInsufficientFuel     = "INSUFFICIENT_FUEL"
	ReasonOnCooldown           = "ON_COOLDOWN"
	ReasonInvalidDirection     = "INVALID_DIRECTION"
	ReasonNoDirections         = "NO_DIRECTIONS"
	ReasonTooManyMoves         = "TOO_MANY_MOVES"
	ReasonOutOfMap             = "OUT_OF_MAP"
	ReasonPlayerNotRegistered  = "PLAYER_NOT_REGISTERED"
	ReasonAlreadyRegistered    = "PLAYER_ALREADY_REGISTERED"
	ReasonInvalidShip          = "INVALID_SHIP"
	ReasonInvalidMap           = "INVALID_MAP"
	ReasonCatchNotFound        = "CATCH_NOT_FOUND"
	ReasonInvalidItemKind      = "INVALID_ITEM_KIND"
	ReasonInsufficientFunds    = "INSUFFICIENT_FUNDS"
)
