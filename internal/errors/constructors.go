package errors

// Convenience functions for common error patterns

// Config errors

func ConfigRequired(field string) *SitemapError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *SitemapError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Manifest and extraction errors. All degrade to the fallback route
// list rather than failing the run.

func ManifestMissing(path string) *SitemapError {
	return New(CategoryManifest, SeverityWarning, "route manifest not found").
		WithContext("path", path)
}

func ManifestUnreadable(path string, cause error) *SitemapError {
	return Wrap(cause, CategoryManifest, SeverityWarning, "route manifest unreadable").
		WithContext("path", path)
}

func ExtractionAmbiguous() *SitemapError {
	return New(CategoryExtraction, SeverityWarning, "no extraction strategy matched manifest content")
}

// Output errors

func OutputWriteFailure(path string, cause error) *SitemapError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "output write failed").
		WithContext("path", path)
}

// CallbackFailure wraps a recovered panic from a user-supplied
// priority/changefreq override. The whole run is aborted.
func CallbackFailure(recovered any) *SitemapError {
	return New(CategoryCallback, SeverityError, "user callback panicked").
		WithContext("recovered", recovered)
}
