package routes

// Routes reúne el ruteo del Licor Command Service
//
// Estructura:
// - api.go: rutas de la API (/v1/*)
// - web.go: rutas web (/, /docs)
// - routes.go: este archivo
//
// Uso:
// routes.SetupAllRoutes(router, commandController, adminController)
