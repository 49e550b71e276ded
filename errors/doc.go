/*
Package errors provides semantic error types for coredata.

The package defines the failure modes of the entity loading and persistence
layers with specific types that can be checked using the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("entity not found")
	    ErrAlreadyExists = errors.New("already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrTransport     = errors.New("transport failure")
	    ErrParse         = errors.New("parse failure")
	)

Usage:

	name, err := reg.GetMethodName("postType", "page", "get", false)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // the (kind, name) pair was never registered
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("postType", "page")
	err := errors.NewTransportError("/wp/v2/types?context=edit", 503, cause)
	err := errors.NewParseError("storage key \"prefs\"", cause)

Unknown entity kinds are deliberately not an error: loading a kind with no
registered loader is a no-op.
*/
package errors
