// sessions creates a browser session behind an external proxy, prints
// its connect URL and releases it. It reads BROWSERKIT_API_KEY and
// BROWSERKIT_BASE_URL; run example/mockserver to try it offline.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	project := os.Getenv("BROWSERKIT_PROJECT_ID")
	if project == "" {
		project = "proj_9b3d"
	}

	client := browserkit.NewClient(browserkit.WithStrict(true))

	proxy, err := browserkit.NewExternalProxyBuilder().
		Server("http://proxy.internal:8080").
		DomainPattern(model.Some(".*\\.example\\.com")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	settings, err := browserkit.NewBrowserSettingsBuilder().
		BlockAds(model.Some(true)).
		SolveCaptchas(model.Some(true)).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	params, err := browserkit.NewSessionCreateParamsBuilder().
		ProjectID(project).
		BrowserSettings(model.Some(settings)).
		Proxies(model.Some(browserkit.NewProxiesConfigs(browserkit.NewProxyConfigExternal(proxy)))).
		Region(model.Some(browserkit.RegionEUCentral1.Enum())).
		KeepAlive(model.Some(true)).
		UserMetadata(model.Some(map[string]rawjson.Value{"team": rawjson.String("qa")})).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	sess, err := client.Sessions.Create(ctx, params)
	if err != nil {
		log.Fatal(err)
	}

	id, _ := sess.ID()
	connectURL, _ := sess.ConnectURL()
	fmt.Println("session     :", id)
	fmt.Println("connect URL :", connectURL.Or("(none)"))

	status, err := sess.Status()
	if err != nil {
		log.Fatal(err)
	}
	if s, ok := status.Value(); !ok {
		fmt.Println("status      : unknown", status)
	} else {
		fmt.Println("status      :", s)
	}

	release, err := browserkit.NewSessionUpdateParamsBuilder().
		ProjectID(project).
		Status(browserkit.SessionUpdateStatusRequestRelease.Enum()).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	if _, err := client.Sessions.Update(ctx, id, release); err != nil {
		log.Fatal(err)
	}
	fmt.Println("released", id)
}
