package resolver

const (
	segmentCDN      = "https://cdn.segment.com/analytics.js/v1"
	segmentFile     = "analytics.min.js"
	metaPixelURL    = "https://connect.facebook.net/en_US/fbevents.js"
	intercomWidget  = "https://widget.intercom.io/widget"
	hotjarBase      = "https://static.hotjar.com/c/hotjar-"
	hotjarDefaultSV = "6"
)

// SegmentInput holds the per-source write key.
type SegmentInput struct {
	WriteKey string
}

// SegmentURL returns <cdn>/<writeKey>/analytics.min.js. A blank write key is
// dropped from the path rather than leaving an empty segment.
func SegmentURL(in SegmentInput) string {
	return joinURL(segmentCDN, in.WriteKey, segmentFile)
}

// Segment resolves options {"writeKey"}.
func Segment(opts Options) (string, error) {
	key, err := opts.str("segment", "writeKey")
	if err != nil {
		return "", err
	}
	return SegmentURL(SegmentInput{WriteKey: key}), nil
}

// MetaPixel ignores options.
func MetaPixel(Options) (string, error) {
	return metaPixelURL, nil
}

// IntercomInput holds the workspace app id.
type IntercomInput struct {
	AppID string
}

func IntercomURL(in IntercomInput) string {
	return joinURL(intercomWidget, in.AppID)
}

// Intercom resolves options {"app_id"}.
func Intercom(opts Options) (string, error) {
	id, err := opts.ident("intercom", "app_id")
	if err != nil {
		return "", err
	}
	return IntercomURL(IntercomInput{AppID: id}), nil
}

// HotjarInput holds the numeric site id and the snippet version.
type HotjarInput struct {
	ID string
	SV string
}

// HotjarURL returns hotjar-<id>.js?sv=<sv>; sv defaults to "6".
func HotjarURL(in HotjarInput) string {
	sv := in.SV
	if sv == "" {
		sv = hotjarDefaultSV
	}
	return withQuery(hotjarBase+escapeSegment(in.ID)+".js", map[string]string{"sv": sv})
}

// Hotjar resolves options {"id", "sv"}. Both accept strings or integers.
func Hotjar(opts Options) (string, error) {
	id, err := opts.ident("hotjar", "id")
	if err != nil {
		return "", err
	}
	sv, err := opts.ident("hotjar", "sv")
	if err != nil {
		return "", err
	}
	return HotjarURL(HotjarInput{ID: id, SV: sv}), nil
}
