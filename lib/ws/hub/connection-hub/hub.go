package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	wsmodels "hr-requests-backend/models/ws"
)

type Provider interface {
	AddClient(userCode string, conn *websocket.Conn)
	DeleteClient(userCode string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userCode string)
	IsConnected(userCode string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userCode]
}

func (i *impl) DeleteClient(userCode string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userCode]
	if !ok {
		return
	}
	delete(i.clients, userCode)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userCode string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userCode]
	if ok {
		oldSess.stop()
	}
	i.clients[userCode] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToUserCode]
	i.mu.Unlock()
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) SendClose(userCode string) {
	i.mu.Lock()
	sess, ok := i.clients[userCode]
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userCode string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userCode]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
