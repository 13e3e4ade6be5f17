package domain

// PlatformID identifies one social destination.
type PlatformID string

// The closed set of supported platforms. Adding a platform means adding an
// entry here, a provider rule in the resolver, and a seed row in
// DefaultPlatforms.
const (
	PlatformTikTok    PlatformID = "tiktok"
	PlatformInstagram PlatformID = "instagram"
	PlatformFacebook  PlatformID = "facebook"
	PlatformYouTube   PlatformID = "youtube"
	PlatformThreads   PlatformID = "threads"
)

// AllPlatformIDs lists the supported platform ids in display order.
var AllPlatformIDs = []PlatformID{
	PlatformTikTok,
	PlatformInstagram,
	PlatformFacebook,
	PlatformYouTube,
	PlatformThreads,
}

// Valid returns true if the id is one of the supported platforms.
func (id PlatformID) Valid() bool {
	switch id {
	case PlatformTikTok, PlatformInstagram, PlatformFacebook, PlatformYouTube, PlatformThreads:
		return true
	default:
		return false
	}
}

// String returns the id as a plain string.
func (id PlatformID) String() string {
	return string(id)
}

// Platform describes one social destination the app can post to.
// Connected and Username are derived from the presence of a Connection;
// everything else is static display metadata.
type Platform struct {
	// ID is the stable platform identifier.
	ID PlatformID `json:"id"`
	// Name is the human-readable display name.
	Name string `json:"name"`
	// Icon is a display glyph for terminals and lists.
	Icon string `json:"icon"`
	// Color is a display accent (hex), no behavioural role.
	Color string `json:"color"`
	// PostTypes lists the supported content kinds, in display order.
	// Always non-empty.
	PostTypes []string `json:"post_types"`
	// Connected is true when a Connection exists for this platform.
	Connected bool `json:"connected"`
	// Username is the connected account display name. Empty unless Connected.
	Username string `json:"username,omitempty"`
}

// SupportsPostType returns true if kind is one of the platform's post types.
func (p *Platform) SupportsPostType(kind string) bool {
	for _, t := range p.PostTypes {
		if t == kind {
			return true
		}
	}
	return false
}

// DefaultPostType returns the first (preferred) post type.
func (p *Platform) DefaultPostType() string {
	return p.PostTypes[0]
}

// DefaultPlatforms returns the seeded platform list with no connections
// applied. Callers receive a fresh copy and may mutate it freely.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: PlatformTikTok, Name: "TikTok", Icon: "🎵", Color: "#000000", PostTypes: []string{"Video"}},
		{ID: PlatformInstagram, Name: "Instagram", Icon: "📷", Color: "#E1306C", PostTypes: []string{"Story", "Post", "Reel"}},
		{ID: PlatformFacebook, Name: "Facebook", Icon: "👤", Color: "#1877F2", PostTypes: []string{"Story", "Post", "Reel"}},
		{ID: PlatformYouTube, Name: "YouTube", Icon: "▶️", Color: "#FF0000", PostTypes: []string{"Video", "Shorts"}},
		{ID: PlatformThreads, Name: "Threads", Icon: "🧵", Color: "#101010", PostTypes: []string{"Post"}},
	}
}
