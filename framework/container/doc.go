// Package container provides a Laravel-style IoC (Inversion of Control)
// container and a declarative Service Provider system for Go.
//
// # Overview
//
// The container manages the instantiation and lifecycle of the framework's
// dependencies. It supports transient bindings, singletons, pre-built
// instances, aliases, and extension (decoration). Because Go has no runtime
// constructor reflection, auto-wiring is replaced by explicit factory
// functions.
//
// # Bindings
//
//	// Transient — new instance every Make()
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	c.Bind("Foo", func(c *container.Container) any { return &Foo{} })
//
//	// Singleton — created once, reused
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
//	c.Singleton("cache", func(c *container.Container) any {
//	    cfg := container.Resolve[*Config](c, "config")
//	    return cache.NewRedis(cfg)
//	})
//
//	// Pre-built value
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
//
//	// Alias
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("cache", "cacheManager")
//
// # Resolving
//
//	// Untyped
//	// Laravel: $app->make(Cache::class)
//	raw := c.Make("cache")
//
//	// Generic (preferred — no type assertion required)
//	cache := container.Resolve[*RedisCache](c, "cache")
//
// # Extend / Decorate
//
//	// Laravel: $app->extend(Logger::class, fn($logger, $app) => new TimestampLogger($logger))
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return &TimestampLogger{Inner: instance.(*Logger)}
//	})
//
// # Service Providers
//
// Providers are declarative: they return the bindings and extensions they
// contribute, and the ProviderRegistry applies them. Factories never run at
// registration time, so every binding is lazy by construction.
//
//	type MailServiceProvider struct{}
//
//	func (p *MailServiceProvider) Bindings() map[string]container.Factory {
//	    return map[string]container.Factory{
//	        "mailer": func(c *container.Container) any {
//	            cfg := container.Resolve[*config.Config](c, "config")
//	            return mail.NewSMTP(cfg)
//	        },
//	    }
//	}
//
//	func (p *MailServiceProvider) Extensions() map[string]container.Extender { return nil }
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&MailServiceProvider{})
package container
