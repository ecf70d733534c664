package security

import "strings"

// defaultAllowedDomains is the built-in allow-list for outbound fetches:
// social platforms, image CDNs and common cloud storage. Extend at runtime
// via the ALLOWED_IMAGE_DOMAINS environment variable.
var defaultAllowedDomains = []string{
	// Social media platforms
	"pbs.twimg.com",
	"abs.twimg.com",
	"xhscdn.com",
	"ci.xiaohongshu.com",
	"sns-webpic-qc.xhscdn.com",
	"sinaimg.cn",
	"ws1.sinaimg.cn",
	"ws2.sinaimg.cn",
	"ws3.sinaimg.cn",
	"ws4.sinaimg.cn",
	"p16-sign.tiktokcdn.com",
	"p16.tiktokcdn.com",
	"p9-sign.douyinpic.com",

	// CDNs and image services
	"imgur.com",
	"i.imgur.com",
	"cloudinary.com",
	"unsplash.com",
	"images.unsplash.com",
	"pexels.com",
	"images.pexels.com",

	// Cloud storage
	"amazonaws.com",
	"cloudfront.net",
	"googleusercontent.com",
	"azureedge.net",

	// Other
	"githubusercontent.com",
}

// AllowList is the process-wide set of hostnames permitted for outbound
// fetches. It is built once at startup and read-only thereafter.
type AllowList struct {
	domains map[string]struct{}
}

// NewAllowList builds an allow-list from the built-in default set unioned
// with the given extra domains. Entries are lowercased; empty entries are
// ignored.
func NewAllowList(extra []string) *AllowList {
	domains := make(map[string]struct{}, len(defaultAllowedDomains)+len(extra))
	for _, d := range defaultAllowedDomains {
		domains[d] = struct{}{}
	}
	for _, d := range extra {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains[d] = struct{}{}
		}
	}
	return &AllowList{domains: domains}
}

// Contains reports whether the hostname is allowed, either by exact match or
// as a dot-separated subdomain of an entry (cdn.sub.example.com matches an
// entry example.com). Matching is case-insensitive.
func (a *AllowList) Contains(hostname string) bool {
	hostname = strings.ToLower(hostname)

	if _, ok := a.domains[hostname]; ok {
		return true
	}

	for domain := range a.domains {
		if strings.HasSuffix(hostname, "."+domain) {
			return true
		}
	}

	return false
}

// Size returns the number of entries, for startup logging.
func (a *AllowList) Size() int {
	return len(a.domains)
}
