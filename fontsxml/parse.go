package fontsxml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/text/language"
)

var (
	rootElements  = xpath.MustCompile("/*")
	childElements = xpath.MustCompile("*")
)

// ParseFile reads a manifest from a file.
func ParseFile(path string) (*Familyset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse reads a manifest. The document must contain exactly one 'familyset'
// element.
func Parse(r io.Reader) (*Familyset, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("fonts.xml: %w", err)
	}
	roots := xmlquery.QuerySelectorAll(doc, rootElements)
	if len(roots) != 1 {
		return nil, errManifest("/", "", "expected a single familyset, found %d root elements", len(roots))
	}
	root := roots[0]
	if root.Data != "familyset" {
		return nil, errManifest(root.Data, "", "unexpected root element")
	}
	set := &Familyset{}
	if err := set.read(root); err != nil {
		return nil, err
	}
	tracer().Debugf("fonts.xml: %d families, %d aliases", len(set.Families()), len(set.Aliases()))
	return set, nil
}

func (set *Familyset) read(n *xmlquery.Node) error {
	const path = "familyset"
	err := eachAttr(n, path, func(name, value string) error {
		if name != "version" {
			return errUnknownAttr
		}
		set.Version = value
		return nil
	})
	if err != nil {
		return err
	}
	if err := onlyWhitespace(n, path); err != nil {
		return err
	}
	return eachChild(n, path, func(child *xmlquery.Node, path string) error {
		switch child.Data {
		case "family":
			family, err := readFamily(child, path)
			if err != nil {
				return err
			}
			set.Entries = append(set.Entries, Entry{Family: family})
		case "alias":
			alias, err := readAlias(child, path)
			if err != nil {
				return err
			}
			set.Entries = append(set.Entries, Entry{Alias: alias})
		default:
			return errManifest(path, "", "unsupported element")
		}
		return nil
	})
}

func readFamily(n *xmlquery.Node, path string) (*Family, error) {
	family := &Family{}
	err := eachAttr(n, path, func(name, value string) (err error) {
		switch name {
		case "name":
			family.Name = value
		case "lang":
			err = checkLang(value)
			family.Lang = value
		case "variant":
			switch value {
			case "compact":
				family.Variant = VariantCompact
			case "elegant":
				family.Variant = VariantElegant
			default:
				err = errInvalidValue
			}
		case "ignore":
			family.Ignore, err = strconv.ParseBool(value)
		default:
			err = errUnknownAttr
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if err := onlyWhitespace(n, path); err != nil {
		return nil, err
	}
	err = eachChild(n, path, func(child *xmlquery.Node, path string) error {
		if child.Data != "font" {
			return errManifest(path, "", "unsupported element")
		}
		font, err := readFont(child, path)
		if err != nil {
			return err
		}
		family.Fonts = append(family.Fonts, *font)
		return nil
	})
	return family, err
}

func readFont(n *xmlquery.Node, path string) (*Font, error) {
	font := &Font{Weight: 400}
	err := eachAttr(n, path, func(name, value string) (err error) {
		switch name {
		case "weight":
			font.Weight, err = strconv.Atoi(value)
		case "index":
			font.Index, err = strconv.Atoi(value)
			if err == nil && font.Index < 0 {
				err = errInvalidValue
			}
		case "style":
			switch value {
			case "normal":
				font.Style = StyleNormal
			case "italic":
				font.Style = StyleItalic
			default:
				err = errInvalidValue
			}
		case "fallbackFor":
			font.FallbackFor = value
		case "postScriptName":
			font.PostScriptName = value
		default:
			err = errUnknownAttr
		}
		return
	})
	if err != nil {
		return nil, err
	}
	var filename strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			filename.WriteString(c.Data)
		}
	}
	if font.Filename = strings.TrimSpace(filename.String()); font.Filename == "" {
		return nil, errManifest(path, "", "font without file name")
	}
	err = eachChild(n, path, func(child *xmlquery.Node, path string) error {
		if child.Data != "axis" {
			return errManifest(path, "", "unsupported element")
		}
		axis, err := readAxis(child, path)
		if err != nil {
			return err
		}
		font.Axes = append(font.Axes, axis)
		return nil
	})
	return font, err
}

func readAxis(n *xmlquery.Node, path string) (axis Axis, err error) {
	hasValue := false
	err = eachAttr(n, path, func(name, value string) (err error) {
		switch name {
		case "tag":
			if len(value) != 4 {
				return errInvalidValue
			}
			axis.Tag = value
		case "stylevalue":
			axis.Value, err = strconv.ParseFloat(value, 64)
			hasValue = err == nil
		default:
			err = errUnknownAttr
		}
		return
	})
	if err == nil && (axis.Tag == "" || !hasValue) {
		err = errManifest(path, "", "axis requires tag and stylevalue")
	}
	return
}

func readAlias(n *xmlquery.Node, path string) (*Alias, error) {
	alias := &Alias{}
	err := eachAttr(n, path, func(name, value string) (err error) {
		switch name {
		case "name":
			alias.Name = value
		case "to":
			alias.To = value
		case "weight":
			alias.Weight, err = strconv.Atoi(value)
		default:
			err = errUnknownAttr
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if alias.Name == "" || alias.To == "" {
		return nil, errManifest(path, "", "alias requires name and to")
	}
	if xmlquery.QuerySelector(n, childElements) != nil {
		return nil, errManifest(path, "", "alias must be empty")
	}
	return alias, nil
}

// --- Helpers ---------------------------------------------------------------

var (
	errUnknownAttr  = errors.New("unknown attribute")
	errInvalidValue = errors.New("invalid value")
)

// eachAttr calls f for every attribute of n. Empty values are treated as
// absent. Errors returned by f are reported as a *ManifestError.
func eachAttr(n *xmlquery.Node, path string, f func(name, value string) error) error {
	for _, attr := range n.Attr {
		name, value := attr.Name.Local, strings.TrimSpace(attr.Value)
		if value == "" {
			continue
		}
		if err := f(name, value); err != nil {
			var me *ManifestError
			if errors.As(err, &me) {
				return err
			}
			return errManifest(path, name, "%v: %q", unwrapNum(err), value)
		}
	}
	return nil
}

// unwrapNum strips the function name and input from strconv errors.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

// eachChild calls f for every child element of n, together with the child's
// path in the document.
func eachChild(n *xmlquery.Node, path string, f func(*xmlquery.Node, string) error) error {
	seen := make(map[string]int)
	for _, child := range xmlquery.QuerySelectorAll(n, childElements) {
		seen[child.Data]++
		if err := f(child, fmt.Sprintf("%s/%s[%d]", path, child.Data, seen[child.Data])); err != nil {
			return err
		}
	}
	return nil
}

func onlyWhitespace(n *xmlquery.Node, path string) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.TextNode && c.Type != xmlquery.CharDataNode {
			continue
		}
		if text := strings.TrimSpace(c.Data); text != "" {
			return errManifest(path, "", "unexpected text %q", text)
		}
	}
	return nil
}

// checkLang checks a space-separated list of BCP 47 tags. Well-formed tags with
// subtags unknown to package language are accepted.
func checkLang(value string) error {
	for _, tag := range strings.Fields(value) {
		if _, err := language.Parse(tag); err != nil {
			var unknown language.ValueError
			if errors.As(err, &unknown) {
				tracer().Infof("fonts.xml: language tag %q has unknown subtag %q", tag, unknown.Subtag())
				continue
			}
			return fmt.Errorf("%w: %v", errInvalidValue, err)
		}
	}
	return nil
}
