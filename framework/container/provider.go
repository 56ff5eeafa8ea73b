package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider is the declarative provider contract: a provider does not
// touch the container itself, it returns what should be registered and the
// ProviderRegistry applies it.
//
//	type CacheServiceProvider struct{}
//
//	func (p *CacheServiceProvider) Bindings() map[string]container.Factory {
//	    return map[string]container.Factory{
//	        "cache": func(c *container.Container) any {
//	            return cache.New(container.Resolve[*config.Config](c, "config"))
//	        },
//	    }
//	}
//
//	func (p *CacheServiceProvider) Extensions() map[string]container.Extender {
//	    return nil
//	}
//
// Bindings are lazy: a factory runs only when its abstract is first resolved,
// never at registration time.
type ServiceProvider interface {
	// Bindings returns the abstract → factory entries this provider
	// contributes. Every entry is registered verbatim; nothing is constructed.
	Bindings() map[string]Factory

	// Extensions returns decorators for entries registered by other
	// providers. Providers with nothing to decorate return nil or an empty
	// map.
	Extensions() map[string]Extender
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry applies ServiceProviders to a container: all bindings
// first (as singletons — caching resolved factories is registry policy, not
// the provider's), then all extensions, so an extension can safely decorate a
// binding contributed by the same provider.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register applies a provider's bindings and extensions to the container.
// Registering the same provider instance twice is a no-op.
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)

	for abstract, factory := range provider.Bindings() {
		r.app.Singleton(abstract, factory)
	}
	for abstract, extender := range provider.Extensions() {
		r.app.Extend(abstract, extender)
	}
}

// Providers returns all registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	out := make([]ServiceProvider, len(r.providers))
	copy(out, r.providers)
	return out
}
