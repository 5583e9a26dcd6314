package models

// LikeArtifactRequest represents the request body for toggling a like on an
// artifact. The email identifies the liker; the endpoint itself is public.
// No presence validation: a body without an email toggles the empty string,
// the same pass-through the rest of the API applies to client input.
type LikeArtifactRequest struct {
	Email string `json:"email"`
}
