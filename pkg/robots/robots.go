package robots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/benedict2310/robotsctl/pkg/model"
)

// Input is what the renderer needs. Empty Host or Sitemap are omitted.
// NoHost and NoSitemap keep a config file from filling those lines back in.
type Input struct {
	Policy     []model.PolicyRule
	Sitemap    string
	Host       string
	ConfigFile string
	NoHost     bool
	NoSitemap  bool
}

// DefaultPolicy is rendered when no policy is configured.
func DefaultPolicy() []model.PolicyRule {
	return []model.PolicyRule{{
		UserAgents: model.StringList{"*"},
		Allow:      model.StringList{"/"},
	}}
}

// Render produces robots.txt text, merging in ConfigFile when set.
func Render(in Input) (string, error) {
	if strings.TrimSpace(in.ConfigFile) != "" {
		file, err := LoadConfigFile(in.ConfigFile)
		if err != nil {
			return "", err
		}
		in = file.apply(in)
	}
	return GenerateText(in.Policy, in.Sitemap, in.Host)
}

// GenerateText renders groups in order, then the Sitemap and Host lines.
func GenerateText(policy []model.PolicyRule, sitemapURL, host string) (string, error) {
	if len(policy) == 0 {
		policy = DefaultPolicy()
	}

	lines := make([]string, 0, 8)
	for groupIndex, rule := range policy {
		if len(nonBlank(rule.UserAgents)) == 0 {
			return "", fmt.Errorf("policy[%d]: userAgent is required", groupIndex)
		}
		if groupIndex > 0 {
			lines = append(lines, "")
		}
		for _, userAgent := range nonBlank(rule.UserAgents) {
			lines = append(lines, "User-agent: "+userAgent)
		}
		for _, allow := range nonBlank(rule.Allow) {
			lines = append(lines, "Allow: "+allow)
		}
		// An empty Disallow is meaningful: it allows everything.
		for _, disallow := range rule.Disallow {
			lines = append(lines, "Disallow: "+strings.TrimSpace(disallow))
		}
		if rule.CrawlDelay != nil {
			if *rule.CrawlDelay < 0 {
				return "", fmt.Errorf("policy[%d]: crawlDelay must not be negative", groupIndex)
			}
			lines = append(lines, "Crawl-delay: "+strconv.FormatFloat(*rule.CrawlDelay, 'f', -1, 64))
		}
		for _, param := range nonBlank(rule.CleanParam) {
			lines = append(lines, "Clean-param: "+param)
		}
	}

	if strings.TrimSpace(sitemapURL) != "" {
		lines = append(lines, "", "Sitemap: "+strings.TrimSpace(sitemapURL))
	}
	if strings.TrimSpace(host) != "" {
		normalized, err := NormalizeHost(host)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(sitemapURL) == "" {
			lines = append(lines, "")
		}
		lines = append(lines, "Host: "+normalized)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// NormalizeHost reduces host to the form robots.txt expects: the bare
// authority, keeping the scheme only when it is https.
func NormalizeHost(host string) (string, error) {
	raw := strings.TrimSpace(host)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse host %q: %w", host, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("host %q does not contain a hostname", host)
	}
	if strings.EqualFold(u.Scheme, "https") {
		return "https://" + u.Host, nil
	}
	return u.Host, nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
