package application

// Kind classifies an application error for the transport layer.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindBadRequest
)

// Error is a client-facing failure. Message is safe to return verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func notFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func badRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }

var (
	ErrUserNotFound      = notFound("User not found")
	ErrCharacterNotFound = notFound("Character not found")
	ErrPlanetNotFound    = notFound("Planet not found")

	ErrFavoriteCharacterNotFound = notFound("Favorite character not found")
	ErrFavoritePlanetNotFound    = notFound("Favorite planet not found")

	ErrNameRequired       = badRequest("Name is required")
	ErrCharacterExists    = badRequest("Character with this name already exists")
	ErrPlanetExists       = badRequest("Planet with this name already exists")
	ErrUserExists         = badRequest("User with this username or email already exists")
	ErrPasswordTooLong    = badRequest("Password must be at most 72 bytes")
	ErrHomeworldNotFound  = badRequest("Homeworld planet not found")
	ErrCharacterFavorited = badRequest("Character is already in favorites")
	ErrPlanetFavorited    = badRequest("Planet is already in favorites")
)
