package container_test

import (
	"testing"

	"github.com/km-arc/go-httpfactory/framework/container"
)

// ── Registration & resolution ─────────────────────────────────────────────────

func TestContainer_Bind_Transient(t *testing.T) {
	c := container.New()
	n := 0
	c.Bind("n", func(c *container.Container) any {
		n++
		return n
	})

	if got := c.Make("n").(int); got != 1 {
		t.Errorf("first Make: got %d, want 1", got)
	}
	if got := c.Make("n").(int); got != 2 {
		t.Errorf("second Make: got %d, want 2 (transient)", got)
	}
}

func TestContainer_Singleton_Cached(t *testing.T) {
	c := container.New()
	n := 0
	c.Singleton("n", func(c *container.Container) any {
		n++
		return n
	})

	c.Make("n")
	if got := c.Make("n").(int); got != 1 {
		t.Errorf("second Make: got %d, want 1 (cached)", got)
	}
}

func TestContainer_Instance(t *testing.T) {
	c := container.New()
	c.Instance("cfg", "value")

	if got := c.Make("cfg").(string); got != "value" {
		t.Errorf("Instance: got %q, want 'value'", got)
	}
}

func TestContainer_Alias(t *testing.T) {
	c := container.New()
	c.Instance("cfg", "value")
	c.Alias("cfg", "configuration")

	if got := c.Make("configuration").(string); got != "value" {
		t.Errorf("aliased Make: got %q, want 'value'", got)
	}
}

func TestContainer_Make_PanicsOnMissing(t *testing.T) {
	c := container.New()
	defer func() {
		if recover() == nil {
			t.Error("Make on unbound abstract should panic")
		}
	}()
	c.Make("missing")
}

func TestContainer_BindsItself(t *testing.T) {
	c := container.New()
	if c.Make("container") != any(c) {
		t.Error("container should resolve itself under 'container'")
	}
}

// ── Extend ────────────────────────────────────────────────────────────────────

func TestContainer_Extend_BeforeResolve(t *testing.T) {
	c := container.New()
	c.Singleton("greeting", func(c *container.Container) any { return "hello" })
	c.Extend("greeting", func(instance any, c *container.Container) any {
		return instance.(string) + " world"
	})

	if got := c.Make("greeting").(string); got != "hello world" {
		t.Errorf("extended: got %q", got)
	}
}

func TestContainer_Extend_AfterResolve(t *testing.T) {
	c := container.New()
	c.Singleton("greeting", func(c *container.Container) any { return "hello" })
	c.Make("greeting")

	c.Extend("greeting", func(instance any, c *container.Container) any {
		return instance.(string) + " again"
	})

	if got := c.Make("greeting").(string); got != "hello again" {
		t.Errorf("extend after resolve: got %q", got)
	}
}

// ── Introspection ─────────────────────────────────────────────────────────────

func TestContainer_Bound(t *testing.T) {
	c := container.New()
	c.Bind("svc", func(c *container.Container) any { return 1 })

	if !c.Bound("svc") {
		t.Error("Bound should be true for registered abstract")
	}
	if c.Bound("other") {
		t.Error("Bound should be false for unknown abstract")
	}
}

func TestContainer_Resolved(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return 1 })

	if c.Resolved("svc") {
		t.Error("Resolved should be false before Make")
	}
	c.Make("svc")
	if !c.Resolved("svc") {
		t.Error("Resolved should be true after Make")
	}
}

func TestContainer_Forget(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return 1 })
	c.Make("svc")
	c.Forget("svc")

	if c.Bound("svc") {
		t.Error("Forget should drop binding and instance")
	}
}

func TestContainer_Flush(t *testing.T) {
	c := container.New()
	c.Bind("a", func(c *container.Container) any { return 1 })
	c.Instance("b", 2)
	c.Flush()

	if c.Bound("a") || c.Bound("b") {
		t.Error("Flush should drop all registrations")
	}
}

// ── Generic resolution ────────────────────────────────────────────────────────

func TestResolve_Typed(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	if got := container.Resolve[int](c, "n"); got != 42 {
		t.Errorf("Resolve[int]: got %d, want 42", got)
	}
}

func TestResolve_WrongType_Panics(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	defer func() {
		if recover() == nil {
			t.Error("Resolve with wrong type should panic")
		}
	}()
	container.Resolve[string](c, "n")
}

func TestMustResolve_WrongType(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	if _, ok := container.MustResolve[string](c, "n"); ok {
		t.Error("MustResolve with wrong type should report !ok")
	}
}
