package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/package-url/packageurl-go"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key)
	if !ex {
		return defVal
	}
	return val
}

// EcosystemToPurlType converts an OSV ecosystem name to the matching purl type.
// Unknown ecosystems fall back to their lowercase form.
func EcosystemToPurlType(ecosystem string) string {
	mapping := map[string]string{
		"npm":        "npm",
		"PyPI":       "pypi",
		"Maven":      "maven",
		"Go":         "golang",
		"NuGet":      "nuget",
		"RubyGems":   "gem",
		"crates.io":  "cargo",
		"Packagist":  "composer",
		"Pub":        "pub",
		"CocoaPods":  "cocoapods",
		"Hex":        "hex",
		"Alpine":     "apk",
		"Wolfi":      "apk",
		"Chainguard": "apk",
		"Debian":     "deb",
		"Ubuntu":     "deb",
	}

	if purlType, exists := mapping[ecosystem]; exists {
		return purlType
	}
	for key, value := range mapping {
		if strings.EqualFold(key, ecosystem) {
			return value
		}
	}
	return strings.ToLower(ecosystem)
}

// GetBasePURL strips version, qualifiers and subpath from a purl and
// normalizes its type, producing a stable package identifier.
// Example: "pkg:apk/wolfi/glibc@2.42-r4" -> "pkg:apk/wolfi/glibc"
func GetBasePURL(purlStr string) (string, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", err
	}

	base := packageurl.PackageURL{
		Type:      EcosystemToPurlType(parsed.Type),
		Namespace: parsed.Namespace,
		Name:      parsed.Name,
	}
	return strings.ToLower(base.ToString()), nil
}

// GetBasePURLFromComponents builds a normalized base purl from OSV package
// fields when the advisory does not carry a purl of its own.
// Example: ("Wolfi", "wolfi", "glibc") -> "pkg:apk/wolfi/glibc"
func GetBasePURLFromComponents(ecosystem, namespace, name string) string {
	purlType := EcosystemToPurlType(ecosystem)

	var basePurl string
	if namespace != "" {
		basePurl = fmt.Sprintf("pkg:%s/%s/%s", purlType, namespace, name)
	} else {
		basePurl = fmt.Sprintf("pkg:%s/%s", purlType, name)
	}
	return strings.ToLower(basePurl)
}

// ParsePURL parses a purl string and returns the parsed PackageURL
func ParsePURL(purlStr string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
