package errs

// HTTP builds an error for a failed request with its status code.
func HTTP(status int, message string) *Error {
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

// Connection builds a connection-level failure.
func Connection(message string, cause error) *Error {
	return &Error{Kind: KindConnection, Message: message, Err: cause}
}

// Timeout builds a request timeout failure.
func Timeout(message string, cause error) *Error {
	return &Error{Kind: KindTimeout, Message: message, Err: cause}
}

// Network builds a generic network failure.
func Network(message string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: cause}
}

// InvalidURL builds an error for an unparseable or unsupported URL.
func InvalidURL(url string) *Error {
	return &Error{Kind: KindInvalidURL, Message: url}
}

// NotFound builds an error for a missing resource.
func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, ID: id}
}

// Private builds an error for an access-restricted resource.
func Private(id string) *Error {
	return &Error{Kind: KindPrivate, ID: id}
}

// RegionBlocked builds an error for a geo-restricted resource.
func RegionBlocked(id string) *Error {
	return &Error{Kind: KindRegionBlocked, ID: id}
}

// Extraction builds an error for a failed metadata extraction.
func Extraction(message string, cause error) *Error {
	return &Error{Kind: KindExtraction, Message: message, Err: cause}
}

// FileRead builds a file read failure.
func FileRead(path string, cause error) *Error {
	return &Error{Kind: KindFileRead, Path: path, Err: cause}
}

// FileWrite builds a file write failure.
func FileWrite(path string, cause error) *Error {
	return &Error{Kind: KindFileWrite, Path: path, Err: cause}
}

// DirCreate builds a directory creation failure.
func DirCreate(path string, cause error) *Error {
	return &Error{Kind: KindDirCreate, Path: path, Err: cause}
}

// EncoderNotFound builds an error for a missing ffmpeg binary.
func EncoderNotFound() *Error {
	return &Error{Kind: KindEncoderNotFound}
}

// EncoderFailed builds an error for a failed ffmpeg invocation.
func EncoderFailed(message string, cause error) *Error {
	return &Error{Kind: KindEncoderFailed, Message: message, Err: cause}
}

// NoStreams builds an error for a catalog without any usable stream.
func NoStreams(id string) *Error {
	return &Error{Kind: KindNoStreams, ID: id}
}

// QualityNotAvailable builds an error for a quality filter no stream satisfies.
func QualityNotAvailable(requested string, available []string) *Error {
	return &Error{Kind: KindQualityNotAvailable, Requested: requested, Available: available}
}

// Interrupted builds an error for a stream cut off mid-transfer.
func Interrupted(message string, cause error) *Error {
	return &Error{Kind: KindInterrupted, Message: message, Err: cause}
}

// MaxRetries builds the terminal error after all attempts are exhausted.
func MaxRetries(attempts int, message string) *Error {
	return &Error{Kind: KindMaxRetries, Attempts: attempts, Message: message}
}

// Cancelled builds an error for a user-initiated abort.
func Cancelled() *Error {
	return &Error{Kind: KindCancelled}
}

// Other builds a generic error with a custom message.
func Other(message string) *Error {
	return &Error{Kind: KindOther, Message: message}
}
