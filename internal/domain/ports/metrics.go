package ports

// Metrics registra eventos de domínio relevantes para observabilidade
type Metrics interface {
	FavoriteChanged(action string)
	AccessDenied(resource string)
	UserCreated(source string)
}
