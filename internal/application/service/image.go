package service

// ImageResolver turns a site-relative image path into the URL the browser should
// load. Unknown or absolute inputs come back unchanged.
type ImageResolver interface {
	Resolve(path string) string
}

type passthroughResolver struct{}

func (passthroughResolver) Resolve(path string) string { return path }

// PassthroughImages is used when no CDN is configured.
var PassthroughImages ImageResolver = passthroughResolver{}
