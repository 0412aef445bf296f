package service

// Broadcaster pushes assessment events to connected clients.
// Implemented by the WebSocket hub.
type Broadcaster interface {
	BroadcastToUsecase(usecaseID string, event string, payload interface{})
}
