package browserkit_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func decodeSession(t *testing.T, s string) browserkit.Session {
	t.Helper()
	var sess browserkit.Session
	assert.NilError(t, json.Unmarshal([]byte(s), &sess))
	return sess
}

func TestSessionRoundTripKeepsUnknownProperties(t *testing.T) {
	in := `{"id":"sess_1","status":"RUNNING","futureField":{"nested":[1,2.50,"x"]},"keepAlive":true}`
	sess := decodeSession(t, in)

	out, err := json.Marshal(sess)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(string(out), in))

	future, ok := sess.Raw().Get("futureField")
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(future.Kind(), rawjson.KindObject))

	again := decodeSession(t, string(out))
	assert.Check(t, sess.Equal(again))
}

func TestOptionalNoneDeletesKey(t *testing.T) {
	p, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_1").
		KeepAlive(model.Some(true)).
		Build()
	assert.NilError(t, err)
	assert.Check(t, p.Raw().Has("keepAlive"))

	p, err = p.ToBuilder().KeepAlive(model.None[bool]()).Build()
	assert.NilError(t, err)
	assert.Check(t, !p.Raw().Has("keepAlive"))

	keepAlive, err := p.KeepAlive()
	assert.NilError(t, err)
	assert.Check(t, !keepAlive.IsSet())

	out, err := json.Marshal(p)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(string(out), `{"projectId":"proj_1"}`))
}

func TestNullStoredInOptionalReadsAsNone(t *testing.T) {
	var p browserkit.SessionCreateParams
	assert.NilError(t, json.Unmarshal([]byte(`{"projectId":"proj_1","timeout":null}`), &p))

	timeout, err := p.Timeout()
	assert.NilError(t, err)
	assert.Check(t, !timeout.IsSet())
	assert.NilError(t, p.Validate())
}

func TestNullableKeepsExplicitNull(t *testing.T) {
	sess, err := browserkit.NewSessionBuilder().
		ID("sess_1").
		ContextID(model.NullOf[string]()).
		EndedAt(model.AbsentOf[time.Time]()).
		Build()
	assert.NilError(t, err)

	v, ok := sess.Raw().Get("contextId")
	assert.Assert(t, ok)
	assert.Check(t, v.IsNull())
	assert.Check(t, !sess.Raw().Has("endedAt"))

	contextID, err := sess.ContextID()
	assert.NilError(t, err)
	assert.Check(t, contextID.IsNull())

	endedAt, err := sess.EndedAt()
	assert.NilError(t, err)
	assert.Check(t, endedAt.IsAbsent())

	out, err := json.Marshal(sess)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(string(out), `{"id":"sess_1","contextId":null}`))
}

func TestAccessorsAreLazy(t *testing.T) {
	obj, err := rawjson.DecodeObject([]byte(`{"status":"RUNNING","proxyBytes":"lots"}`))
	assert.NilError(t, err)
	sess := browserkit.SessionFromRaw(obj)

	status, err := sess.Status()
	assert.NilError(t, err, "valid properties read fine next to broken ones")
	assert.Check(t, status.Equal(browserkit.SessionStatusRunning.Enum()))

	var missing *model.MissingRequiredFieldError
	_, err = sess.ID()
	assert.Assert(t, errors.As(err, &missing))
	assert.Check(t, is.Equal(missing.Field, "id"))

	var mismatch *model.TypeMismatchError
	_, err = sess.ProxyBytes()
	assert.Assert(t, errors.As(err, &mismatch))
	assert.Check(t, is.Equal(mismatch.Field, "proxyBytes"))
	assert.Check(t, is.Equal(mismatch.Got, rawjson.KindString))

	err = sess.Validate()
	assert.ErrorIs(t, err, model.ErrInvalidData)
	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(err, &ide))
	assert.Check(t, is.Equal(ide.Path, "id"))
}

func TestUnknownEnumValue(t *testing.T) {
	status, err := browserkit.SessionStatusType.Parse([]byte(`"PAUSED"`))
	assert.NilError(t, err)
	assert.Check(t, !status.Known())
	assert.Check(t, is.Equal(status.Raw(), "PAUSED"))

	out, err := json.Marshal(status)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(string(out), `"PAUSED"`))

	var invalid *model.InvalidEnumValueError
	assert.Assert(t, errors.As(status.Validate(), &invalid))
	assert.Check(t, is.Equal(invalid.Enum, "SessionStatus"))

	_, err = browserkit.SessionStatusType.Parse([]byte(`7`))
	var mismatch *model.TypeMismatchError
	assert.Check(t, errors.As(err, &mismatch), "a value of the wrong JSON type is not an unknown enum")

	sess := decodeSession(t, `{"id":"sess_1","status":"PAUSED"}`)
	got, err := sess.Status()
	assert.NilError(t, err)
	_, known := got.Value()
	assert.Check(t, !known)

	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(sess.Validate(), &ide))
	assert.Check(t, is.Equal(ide.Path, "status"))
	assert.Check(t, errors.As(ide, &invalid))
}

func TestKnownEnumEqualsItsRawValue(t *testing.T) {
	assert.Check(t, browserkit.RegionUSEast1.Enum().Equal(browserkit.RegionType.FromRaw("us-east-1")))
	assert.Check(t, is.Equal(browserkit.RegionEUCentral1.String(), "eu-central-1"))
	assert.Check(t, is.Len(browserkit.SessionStatusType.Known(), 4))
}

func TestUnknownStatusPrints(t *testing.T) {
	var zero browserkit.SessionStatus
	assert.Check(t, is.Equal(fmt.Sprint(zero), "SessionStatus(0)"))
	assert.Check(t, is.Equal(fmt.Sprint(browserkit.Region(42)), "Region(42)"))

	unknown := browserkit.SessionStatusType.FromRaw("NEW")
	sym, known := unknown.Value()
	assert.Check(t, !known)
	assert.Check(t, is.Equal(fmt.Sprint(sym), "SessionStatus(0)"))
	assert.Check(t, is.Equal(unknown.String(), "NEW"))
	assert.Check(t, is.Equal(browserkit.SessionStatusCompleted.String(), "COMPLETED"))
}

func TestEnumOfUnregisteredStatusPanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
		assert.Check(t, is.Contains(fmt.Sprint(r), "SessionStatus: 9 is not a registered variant"))
	}()
	browserkit.SessionStatus(9).Enum()
}

func TestExtensionSourceVariants(t *testing.T) {
	var byID browserkit.ExtensionSource
	assert.NilError(t, json.Unmarshal([]byte(`"ext_1"`), &byID))
	id, ok := byID.AsID()
	assert.Check(t, ok)
	assert.Check(t, is.Equal(id, "ext_1"))
	_, ok = byID.AsRef()
	assert.Check(t, !ok)

	var byRef browserkit.ExtensionSource
	assert.NilError(t, json.Unmarshal([]byte(`{"id":"ext_1","version":"2"}`), &byRef))
	assert.Check(t, is.Equal(byRef.Tag(), browserkit.ExtensionSourceRef))
	ref, ok := byRef.AsRef()
	assert.Assert(t, ok)
	version, err := ref.Version()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(version.Or(""), "2"))

	built, err := browserkit.NewExtensionRefBuilder().ID("ext_1").Version(model.Some("2")).Build()
	assert.NilError(t, err)
	assert.Check(t, byRef.Equal(browserkit.NewExtensionSourceRef(built)))
	assert.Check(t, !byRef.Equal(byID))

	var bad browserkit.ExtensionSource
	err = json.Unmarshal([]byte(`42`), &bad)
	var unrecognized *model.UnrecognizedVariantError
	assert.Assert(t, errors.As(err, &unrecognized))
	assert.Check(t, is.Equal(unrecognized.Union, "ExtensionSource"))
	assert.ErrorIs(t, err, model.ErrInvalidData)
}

func TestProxyConfigStampsDiscriminator(t *testing.T) {
	ext, err := browserkit.NewExternalProxyBuilder().
		Server("http://proxy.internal:8080").
		Username(model.Some("bot")).
		Build()
	assert.NilError(t, err)

	cfg := browserkit.NewProxyConfigExternal(ext)
	out, err := json.Marshal(cfg)
	assert.NilError(t, err)
	assert.Check(t, strings.HasPrefix(string(out), `{"type":"external",`), string(out))

	var decoded browserkit.ProxyConfig
	assert.NilError(t, json.Unmarshal(out, &decoded))
	assert.Check(t, decoded.Equal(cfg))
	got, ok := decoded.AsExternal()
	assert.Assert(t, ok)
	server, err := got.Server()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(server, "http://proxy.internal:8080"))

	var unknown browserkit.ProxyConfig
	err = json.Unmarshal([]byte(`{"type":"socks","server":"x"}`), &unknown)
	var unrecognized *model.UnrecognizedVariantError
	assert.Check(t, errors.As(err, &unrecognized))

	err = json.Unmarshal([]byte(`{"server":"x"}`), &unknown)
	assert.Check(t, errors.As(err, &unrecognized))
}

func TestProxyTypeMustMatchItsVariant(t *testing.T) {
	obj, err := rawjson.DecodeObject([]byte(`{"type":"external","domainPattern":".*"}`))
	assert.NilError(t, err)
	p := browserkit.BrowserbaseProxyFromRaw(obj)

	err = p.Validate()
	var mismatch *model.TypeMismatchError
	assert.Assert(t, errors.As(err, &mismatch))
	assert.Check(t, is.Equal(mismatch.Expected, `"browserbase"`))
	assert.ErrorIs(t, err, model.ErrInvalidData)

	_, err = p.Type()
	assert.ErrorIs(t, err, model.ErrInvalidData)

	built, err := browserkit.NewBrowserbaseProxyBuilder().Build()
	assert.NilError(t, err)
	assert.NilError(t, built.Validate())
	typ, err := built.Type()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(typ, "browserbase"))
}

func TestNullLeavesModelsAndUnionsZero(t *testing.T) {
	var holder struct {
		Session   browserkit.Session         `json:"session"`
		Proxies   browserkit.Proxies         `json:"proxies"`
		Proxy     browserkit.ProxyConfig     `json:"proxy"`
		Extension browserkit.ExtensionSource `json:"extension"`
	}
	assert.NilError(t, json.Unmarshal([]byte(`{"session":null,"proxies":null,"proxy":null,"extension":null}`), &holder))
	assert.Check(t, holder.Session.IsZero())
	assert.Check(t, holder.Proxies.IsZero())
	assert.Check(t, holder.Proxy.IsZero())
	assert.Check(t, holder.Extension.IsZero())

	var sess browserkit.Session
	assert.NilError(t, json.Unmarshal([]byte(` null `), &sess))
	assert.Check(t, sess.IsZero())
}

func TestProxiesVariants(t *testing.T) {
	var enabled browserkit.Proxies
	assert.NilError(t, json.Unmarshal([]byte(`true`), &enabled))
	on, ok := enabled.AsEnabled()
	assert.Check(t, ok && on)
	assert.Check(t, enabled.Equal(browserkit.NewProxiesEnabled(true)))

	var configs browserkit.Proxies
	assert.NilError(t, json.Unmarshal([]byte(`[{"type":"browserbase","geolocation":{"country":"US"}}]`), &configs))
	list, ok, err := configs.AsConfigs()
	assert.NilError(t, err)
	assert.Assert(t, ok)
	assert.Assert(t, is.Len(list, 1))
	bb, ok := list[0].AsBrowserbase()
	assert.Assert(t, ok)
	geo, err := bb.Geolocation()
	assert.NilError(t, err)
	g, ok := geo.Get()
	assert.Assert(t, ok)
	country, err := g.Country()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(country, "US"))

	var bad browserkit.Proxies
	err = json.Unmarshal([]byte(`"yes"`), &bad)
	assert.ErrorIs(t, err, model.ErrInvalidData)
}

func TestNestedValidationReportsPath(t *testing.T) {
	fp, err := browserkit.NewFingerprintBuilder().
		Browsers(model.Some([]browserkit.BrowserEnum{
			browserkit.BrowserChrome.Enum(),
			browserkit.BrowserType.FromRaw("netscape"),
		})).
		Build()
	assert.NilError(t, err)
	settings, err := browserkit.NewBrowserSettingsBuilder().Fingerprint(model.Some(fp)).Build()
	assert.NilError(t, err)
	p, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_1").
		BrowserSettings(model.Some(settings)).
		Build()
	assert.NilError(t, err, "building never validates")

	var ide *model.InvalidDataError
	assert.Assert(t, errors.As(p.Validate(), &ide))
	assert.Check(t, is.Equal(ide.Path, "browserSettings.fingerprint.browsers[1]"))
	var invalid *model.InvalidEnumValueError
	assert.Check(t, errors.As(ide, &invalid))
}

func TestBuiltModelsAreFrozen(t *testing.T) {
	p, err := browserkit.NewSessionCreateParamsBuilder().ProjectID("proj_1").Build()
	assert.NilError(t, err)

	err = p.Raw().Set("projectId", rawjson.String("other"))
	var frozen *rawjson.FrozenMutationError
	assert.Assert(t, errors.As(err, &frozen))
	assert.Check(t, is.Equal(frozen.Key, "projectId"))

	// The builder works on a copy, so the original is untouched.
	changed, err := p.ToBuilder().ProjectID("proj_2").Build()
	assert.NilError(t, err)
	before, _ := p.ProjectID()
	after, _ := changed.ProjectID()
	assert.Check(t, is.Equal(before, "proj_1"))
	assert.Check(t, is.Equal(after, "proj_2"))

	sess := decodeSession(t, `{"id":"sess_1"}`)
	assert.ErrorIs(t, sess.Raw().Delete("id"), rawjson.ErrFrozen)
}

func TestEqualityIgnoresPropertyOrder(t *testing.T) {
	a, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_1").
		Timeout(model.Some(int64(60))).
		Region(model.Some(browserkit.RegionUSEast1.Enum())).
		Build()
	assert.NilError(t, err)
	b, err := browserkit.NewSessionCreateParamsBuilder().
		Region(model.Some(browserkit.RegionUSEast1.Enum())).
		Timeout(model.Some(int64(60))).
		ProjectID("proj_1").
		Build()
	assert.NilError(t, err)

	assert.Check(t, a.Equal(b))

	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	assert.Check(t, string(ja) != string(jb), "serialization keeps insertion order")

	ha, err := a.Hash()
	assert.NilError(t, err)
	hb, err := b.Hash()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(ha, hb))

	c, err := a.ToBuilder().Extra("beta", rawjson.Bool(true)).Build()
	assert.NilError(t, err)
	assert.Check(t, !a.Equal(c))

	huge, err := a.ToBuilder().Extra("quota", rawjson.Number("1e400")).Build()
	assert.NilError(t, err)
	hh, err := huge.Hash()
	assert.NilError(t, err, "numbers beyond float64 still hash")
	assert.Check(t, hh != ha)
}

func TestExtraProperties(t *testing.T) {
	p, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID("proj_1").
		Extra("experimentalFlag", rawjson.String("on")).
		Build()
	assert.NilError(t, err)
	assert.NilError(t, p.Validate(), "undeclared properties are not validated")

	v, ok := p.Raw().Get("experimentalFlag")
	assert.Assert(t, ok)
	s, _ := v.Str()
	assert.Check(t, is.Equal(s, "on"))
}
