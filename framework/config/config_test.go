package config_test

import (
	"testing"

	"github.com/km-arc/go-httpfactory/framework/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/does-not-exist.env")

	if cfg.App.Name != "GoHTTPFactory" {
		t.Errorf("App.Name: got %q", cfg.App.Name)
	}
	if cfg.App.Env != "local" {
		t.Errorf("App.Env: got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8000" {
		t.Errorf("App.Port: got %q", cfg.App.Port)
	}
	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
}

func TestLoad_HTTPFactoryDefaults_Empty(t *testing.T) {
	cfg := config.Load("testdata/does-not-exist.env")

	hf := cfg.HTTPFactory
	if hf.Request != "" || hf.Response != "" || hf.ServerRequest != "" ||
		hf.Stream != "" || hf.UploadedFile != "" || hf.URI != "" {
		t.Errorf("HTTPFactory defaults should be empty (discovery), got %+v", hf)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "TestApp")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("HTTP_FACTORY_STREAM", "custom.StreamFactory")
	t.Setenv("HTTP_FACTORY_URI", "custom.URIFactory")

	cfg := config.Load("testdata/does-not-exist.env")

	if cfg.App.Name != "TestApp" {
		t.Errorf("App.Name: got %q", cfg.App.Name)
	}
	if cfg.App.Env != "testing" {
		t.Errorf("App.Env: got %q", cfg.App.Env)
	}
	if cfg.App.Debug {
		t.Error("App.Debug should be false")
	}
	if cfg.HTTPFactory.Stream != "custom.StreamFactory" {
		t.Errorf("HTTPFactory.Stream: got %q", cfg.HTTPFactory.Stream)
	}
	if cfg.HTTPFactory.URI != "custom.URIFactory" {
		t.Errorf("HTTPFactory.URI: got %q", cfg.HTTPFactory.URI)
	}
}

func TestGetHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BOOL", "true")

	if got := config.Get("SOME_MISSING", "dft"); got != "dft" {
		t.Errorf("Get fallback: got %q", got)
	}
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("GetInt: got %d", got)
	}
	if got := config.GetInt("SOME_BOOL", 7); got != 7 {
		t.Errorf("GetInt non-numeric: got %d", got)
	}
	if !config.GetBool("SOME_BOOL", false) {
		t.Error("GetBool: got false")
	}
}
