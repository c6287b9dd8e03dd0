package browserkit

import (
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

var metadataCodec = model.MapOf(model.Any)

func isKind(k rawjson.Kind) func(rawjson.Value) bool {
	return func(v rawjson.Value) bool { return v.Kind() == k }
}

// ProxyConfig is one proxy of a session. The "type" property selects
// the variant.
type ProxyConfig struct {
	model.Union
}

const (
	ProxyConfigBrowserbase = "browserbase"
	ProxyConfigExternal    = "external"
)

var proxyConfigType = &model.UnionType{
	Name:          "ProxyConfig",
	Discriminator: "type",
	Variants: []model.Variant{
		{Tag: ProxyConfigBrowserbase, Discriminant: "browserbase", Check: browserbaseProxyCodec.Check},
		{Tag: ProxyConfigExternal, Discriminant: "external", Check: externalProxyCodec.Check},
	},
}

var (
	proxyConfigCodec  = model.UnionOf(proxyConfigType, func(u model.Union) ProxyConfig { return ProxyConfig{u} })
	proxyConfigsCodec = model.ArrayOf(proxyConfigCodec)
)

func NewProxyConfigBrowserbase(p BrowserbaseProxy) ProxyConfig {
	return ProxyConfig{proxyConfigType.New(ProxyConfigBrowserbase, p.JSONValue())}
}

func NewProxyConfigExternal(p ExternalProxy) ProxyConfig {
	return ProxyConfig{proxyConfigType.New(ProxyConfigExternal, p.JSONValue())}
}

func (c ProxyConfig) AsBrowserbase() (BrowserbaseProxy, bool) {
	if c.Tag() != ProxyConfigBrowserbase {
		return BrowserbaseProxy{}, false
	}
	obj, _ := c.Payload().Object()
	return BrowserbaseProxyFromRaw(obj), true
}

func (c ProxyConfig) AsExternal() (ExternalProxy, bool) {
	if c.Tag() != ProxyConfigExternal {
		return ExternalProxy{}, false
	}
	obj, _ := c.Payload().Object()
	return ExternalProxyFromRaw(obj), true
}

func (c ProxyConfig) Equal(o ProxyConfig) bool { return c.Union.Equal(o.Union) }

func (c *ProxyConfig) UnmarshalJSON(data []byte) error {
	return unmarshalUnion(data, proxyConfigCodec, c)
}

// Proxies is either a switch for the built-in proxy pool or a list of
// proxy configurations.
type Proxies struct {
	model.Union
}

const (
	ProxiesEnabled = "enabled"
	ProxiesConfigs = "configs"
)

var proxiesType = &model.UnionType{
	Name: "Proxies",
	Variants: []model.Variant{
		{Tag: ProxiesEnabled, Match: isKind(rawjson.KindBool)},
		{Tag: ProxiesConfigs, Match: isKind(rawjson.KindArray), Check: proxyConfigsCodec.Check},
	},
}

var proxiesCodec = model.UnionOf(proxiesType, func(u model.Union) Proxies { return Proxies{u} })

func NewProxiesEnabled(on bool) Proxies {
	return Proxies{proxiesType.New(ProxiesEnabled, rawjson.Bool(on))}
}

func NewProxiesConfigs(configs ...ProxyConfig) Proxies {
	items := make([]rawjson.Value, 0, len(configs))
	for _, c := range configs {
		items = append(items, c.JSONValue())
	}
	return Proxies{proxiesType.New(ProxiesConfigs, rawjson.Array(items...))}
}

func (p Proxies) AsEnabled() (bool, bool) {
	if p.Tag() != ProxiesEnabled {
		return false, false
	}
	return p.Payload().Bool()
}

// AsConfigs decodes the proxy list. The error reports the first entry
// with an unknown type.
func (p Proxies) AsConfigs() ([]ProxyConfig, bool, error) {
	if p.Tag() != ProxiesConfigs {
		return nil, false, nil
	}
	configs, err := proxyConfigsCodec.Decode(p.Payload())
	return configs, true, err
}

func (p Proxies) Equal(o Proxies) bool { return p.Union.Equal(o.Union) }

func (p *Proxies) UnmarshalJSON(data []byte) error {
	return unmarshalUnion(data, proxiesCodec, p)
}

// ExtensionSource names the extension a session loads: a bare id, or an
// id pinned to a version.
type ExtensionSource struct {
	model.Union
}

const (
	ExtensionSourceID  = "id"
	ExtensionSourceRef = "ref"
)

var extensionSourceType = &model.UnionType{
	Name: "ExtensionSource",
	Variants: []model.Variant{
		{Tag: ExtensionSourceID, Match: isKind(rawjson.KindString)},
		{Tag: ExtensionSourceRef, Match: isKind(rawjson.KindObject), Check: extensionRefCodec.Check},
	},
}

var extensionSourceCodec = model.UnionOf(extensionSourceType, func(u model.Union) ExtensionSource { return ExtensionSource{u} })

func NewExtensionSourceID(id string) ExtensionSource {
	return ExtensionSource{extensionSourceType.New(ExtensionSourceID, rawjson.String(id))}
}

func NewExtensionSourceRef(ref ExtensionRef) ExtensionSource {
	return ExtensionSource{extensionSourceType.New(ExtensionSourceRef, ref.JSONValue())}
}

func (s ExtensionSource) AsID() (string, bool) {
	if s.Tag() != ExtensionSourceID {
		return "", false
	}
	return s.Payload().Str()
}

func (s ExtensionSource) AsRef() (ExtensionRef, bool) {
	if s.Tag() != ExtensionSourceRef {
		return ExtensionRef{}, false
	}
	obj, _ := s.Payload().Object()
	return ExtensionRefFromRaw(obj), true
}

func (s ExtensionSource) Equal(o ExtensionSource) bool { return s.Union.Equal(o.Union) }

func (s *ExtensionSource) UnmarshalJSON(data []byte) error {
	return unmarshalUnion(data, extensionSourceCodec, s)
}

// unmarshalUnion leaves dst untouched when data is null.
func unmarshalUnion[T any](data []byte, c model.Codec[T], dst *T) error {
	v, err := rawjson.Decode(data)
	if err != nil {
		return err
	}
	if v.IsNull() {
		return nil
	}
	t, err := c.Decode(v)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
