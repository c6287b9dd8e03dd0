package browserkit

import (
	"strconv"

	"github.com/tailbits/browserkit/model"
)

// SessionStatus is the lifecycle state of a browser session.
type SessionStatus int

const (
	SessionStatusRunning SessionStatus = iota + 1
	SessionStatusError
	SessionStatusTimedOut
	SessionStatusCompleted
)

// SessionStatusEnum is a session status as carried on the wire. It may
// hold a value this version of the SDK does not know.
type SessionStatusEnum = model.Enum[string, SessionStatus]

var SessionStatusType = model.NewEnumType("SessionStatus", map[SessionStatus]string{
	SessionStatusRunning:   "RUNNING",
	SessionStatusError:     "ERROR",
	SessionStatusTimedOut:  "TIMED_OUT",
	SessionStatusCompleted: "COMPLETED",
})

func (s SessionStatus) Enum() SessionStatusEnum { return SessionStatusType.Of(s) }

// String is the wire value, or SessionStatus(n) for an unregistered
// symbol such as the zero value held by an unknown enum.
func (s SessionStatus) String() string {
	if r, ok := SessionStatusType.RawOf(s); ok {
		return r
	}
	return "SessionStatus(" + strconv.Itoa(int(s)) + ")"
}

// Region is where a session's browser runs.
type Region int

const (
	RegionUSWest2 Region = iota + 1
	RegionUSEast1
	RegionEUCentral1
	RegionAPSoutheast1
)

type RegionEnum = model.Enum[string, Region]

var RegionType = model.NewEnumType("Region", map[Region]string{
	RegionUSWest2:      "us-west-2",
	RegionUSEast1:      "us-east-1",
	RegionEUCentral1:   "eu-central-1",
	RegionAPSoutheast1: "ap-southeast-1",
})

func (r Region) Enum() RegionEnum { return RegionType.Of(r) }

func (r Region) String() string {
	if raw, ok := RegionType.RawOf(r); ok {
		return raw
	}
	return "Region(" + strconv.Itoa(int(r)) + ")"
}

// SessionUpdateStatus is the only transition a client may request.
type SessionUpdateStatus int

const (
	SessionUpdateStatusRequestRelease SessionUpdateStatus = iota + 1
)

type SessionUpdateStatusEnum = model.Enum[string, SessionUpdateStatus]

var SessionUpdateStatusType = model.NewEnumType("SessionUpdateStatus", map[SessionUpdateStatus]string{
	SessionUpdateStatusRequestRelease: "REQUEST_RELEASE",
})

func (s SessionUpdateStatus) Enum() SessionUpdateStatusEnum { return SessionUpdateStatusType.Of(s) }

type Browser int

const (
	BrowserChrome Browser = iota + 1
	BrowserEdge
	BrowserFirefox
	BrowserSafari
)

type BrowserEnum = model.Enum[string, Browser]

var BrowserType = model.NewEnumType("Browser", map[Browser]string{
	BrowserChrome:  "chrome",
	BrowserEdge:    "edge",
	BrowserFirefox: "firefox",
	BrowserSafari:  "safari",
})

func (b Browser) Enum() BrowserEnum { return BrowserType.Of(b) }

type Device int

const (
	DeviceDesktop Device = iota + 1
	DeviceMobile
)

type DeviceEnum = model.Enum[string, Device]

var DeviceType = model.NewEnumType("Device", map[Device]string{
	DeviceDesktop: "desktop",
	DeviceMobile:  "mobile",
})

func (d Device) Enum() DeviceEnum { return DeviceType.Of(d) }

type OperatingSystem int

const (
	OperatingSystemAndroid OperatingSystem = iota + 1
	OperatingSystemIOS
	OperatingSystemLinux
	OperatingSystemMacOS
	OperatingSystemWindows
)

type OperatingSystemEnum = model.Enum[string, OperatingSystem]

var OperatingSystemType = model.NewEnumType("OperatingSystem", map[OperatingSystem]string{
	OperatingSystemAndroid: "android",
	OperatingSystemIOS:     "ios",
	OperatingSystemLinux:   "linux",
	OperatingSystemMacOS:   "macos",
	OperatingSystemWindows: "windows",
})

func (o OperatingSystem) Enum() OperatingSystemEnum { return OperatingSystemType.Of(o) }

// ProxyType is the discriminator of ProxyConfig.
type ProxyType int

const (
	ProxyTypeBrowserbase ProxyType = iota + 1
	ProxyTypeExternal
)

type ProxyTypeEnum = model.Enum[string, ProxyType]

var ProxyTypeType = model.NewEnumType("ProxyType", map[ProxyType]string{
	ProxyTypeBrowserbase: "browserbase",
	ProxyTypeExternal:    "external",
})

func (p ProxyType) Enum() ProxyTypeEnum { return ProxyTypeType.Of(p) }

var (
	sessionStatusCodec       = model.EnumOf(SessionStatusType)
	regionCodec              = model.EnumOf(RegionType)
	sessionUpdateStatusCodec = model.EnumOf(SessionUpdateStatusType)
	browserCodec             = model.EnumOf(BrowserType)
	deviceCodec              = model.EnumOf(DeviceType)
	operatingSystemCodec     = model.EnumOf(OperatingSystemType)
)
