// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/vbm-settings/internal/config"
)

// DefaultPort is the editor port used when PORT is unset or unusable.
const DefaultPort = 1880

const (
	reconnectTimeMillis = 15000
	debugMaxLength      = 1000

	siteURL         = "https://bot.viseo.io"
	catalogueURLFmt = "https://catalog.bot.viseo.io/%s.json"
	templateZipURL  = "https://github.com/NGRP/viseo-bot-template/archive/v1.0.0.zip"
)

// ParsePort reads the editor port. An empty value yields [DefaultPort]; an
// unparsable one yields [DefaultPort] and an error describing the value.
func ParsePort(raw string) (int, error) {
	if raw == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 {
		return DefaultPort, fmt.Errorf("invalid PORT %q, using %d", raw, DefaultPort)
	}

	return port, nil
}

// RuntimePolicy returns the literal block of runtime settings layered over
// the base defaults: timeouts, editor labels, the security block and plugin
// wiring. users becomes the admin access list as is.
func RuntimePolicy(env config.Environment, port int, users []UserRecord, version string) Fragment {
	label := env.BotLabel()
	loginImage := themePath(env, "viseo_login.png")

	return Fragment{
		"uiPort":              port,
		"mqttReconnectTime":   reconnectTimeMillis,
		"serialReconnectTime": reconnectTimeMillis,
		"debugMaxLength":      debugMaxLength,
		"debugUseColors":      true,
		"flowFile":            "flows.json",
		"flowFilePretty":      true,
		"httpAdminRoot":       orDefault(env.Route, "/"),
		"httpStatic":          normalizePath(env.BotRoot + "/webapp"),
		"adminAuth": map[string]any{
			"type":  "credentials",
			"users": usersValue(users),
		},
		"disableEditor":         env.EditorDisabled(),
		"functionGlobalContext": functionGlobalContext(),
		"paletteCategories":     paletteCategories(),
		"logging": map[string]any{
			"console": map[string]any{
				"level":   logLevel(env),
				"metrics": false,
				"audit":   false,
			},
		},
		"editorTheme": editorTheme(env, label, version),
		"userMenu":    true,
		"login": map[string]any{
			"image": loginImage,
		},
	}
}

func editorTheme(env config.Environment, label, version string) map[string]any {
	css := "viseo.css"
	headerTitle := label
	logo := "logo_dev.png"
	if env.IsProd() {
		css = "viseo_prod.css"
		headerTitle += " [PROD]"
		logo = "logo_prod.png"
	}

	return map[string]any{
		"palette": map[string]any{
			"catalogues": []any{fmt.Sprintf(catalogueURLFmt, version)},
		},
		"projects": map[string]any{
			"enabled":              env.ProjectsEnabled(),
			"createDefaultFromZip": templateZipURL,
			"packageDir":           "data/",
			"activeProject":        env.Bot,
		},
		"page": map[string]any{
			"title":   "VBM - " + label,
			"favicon": themePath(env, "favicon.ico"),
			"css":     themePath(env, css),
			"scripts": themePath(env, "viseo.js"),
		},
		"header": map[string]any{
			"title": headerTitle,
			"image": themePath(env, logo),
			"url":   siteURL,
		},
		"deployButton": map[string]any{
			"type":  "simple",
			"label": "Save",
		},
		"menu": map[string]any{
			"menu-item-import-library":     false,
			"menu-item-export-library":     false,
			"menu-item-keyboard-shortcuts": false,
			"menu-item-help": map[string]any{
				"label": label,
				"url":   siteURL,
			},
		},
		"userMenu": true,
		"login": map[string]any{
			"image": themePath(env, "viseo_login.png"),
		},
	}
}

func themePath(env config.Environment, file string) string {
	return normalizePath(env.FrameworkRoot + "/theme/" + file)
}

func logLevel(env config.Environment) string {
	if env.IsDev() {
		return "debug"
	}

	return "info"
}

// functionGlobalContext names the modules the host exposes to function
// nodes as context.global.
func functionGlobalContext() map[string]any {
	return map[string]any{
		"tzModule":    "moment-timezone",
		"xpathModule": "xpath",
		"domModule":   "xmldom",
		"uuidv1":      "uuid/v1",
		"uuidv4":      "uuid/v4",
		"uuidv5":      "uuid/v5",
		"CONFIG":      "node-red-viseo-helper",
	}
}

func paletteCategories() []any {
	return []any{
		"📻_channels",
		"⚙️_bot_factory",
		"🛠️_tools",
		"function",
		"input",
		"output",
		"💬_language",
		"🖐️_channels_helpers",
		"💾_data",
		"📊_logs",
		"🖼️_image",
		"🔉_audio",
		"🃏_miscellaneous",
	}
}
