package controller

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// The call lobby relays signaling between peers; media never touches the
// server. Each connection gets a uuid peer id, announced on connect.

type lobbyPeer struct {
	conn   *websocket.Conn
	name   string
	roomID string
	mu     sync.Mutex
}

func (p *lobbyPeer) send(v interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.conn.WriteJSON(v); err != nil {
		log.Printf("lobby write to %s failed: %v", p.conn.RemoteAddr(), err)
	}
}

type callLobby struct {
	mu    sync.RWMutex
	peers map[string]*lobbyPeer
}

var lobby = &callLobby{peers: make(map[string]*lobbyPeer)}

type lobbyMessage struct {
	Event  string      `json:"event"`
	RoomID string      `json:"room_id,omitempty"`
	Name   string      `json:"name,omitempty"`
	To     string      `json:"to,omitempty"`
	From   string      `json:"from,omitempty"`
	Signal interface{} `json:"signal,omitempty"`
}

// HandleCallLobbyWS serves one lobby connection until the peer leaves.
func HandleCallLobbyWS(c *websocket.Conn) {
	peerID := uuid.NewString()
	peer := &lobbyPeer{conn: c}

	lobby.mu.Lock()
	lobby.peers[peerID] = peer
	lobby.mu.Unlock()

	defer func() {
		lobby.mu.Lock()
		delete(lobby.peers, peerID)
		roomID := peer.roomID
		lobby.mu.Unlock()

		if roomID != "" {
			lobby.broadcast(roomID, peerID, lobbyMessage{Event: "callEnded", From: peerID})
		}
		c.Close()
	}()

	peer.send(lobbyMessage{Event: "me", From: peerID})

	for {
		var msg lobbyMessage
		if err := c.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Event {
		case "joinRoom":
			lobby.mu.Lock()
			peer.roomID = msg.RoomID
			peer.name = msg.Name
			lobby.mu.Unlock()
			lobby.broadcast(msg.RoomID, peerID, lobbyMessage{
				Event: "userJoined",
				From:  peerID,
				Name:  msg.Name,
			})
		case "callUser":
			lobby.relay(msg.To, lobbyMessage{
				Event:  "callUser",
				From:   peerID,
				Name:   msg.Name,
				Signal: msg.Signal,
			})
		case "answerCall":
			lobby.relay(msg.To, lobbyMessage{
				Event:  "callAccepted",
				From:   peerID,
				Signal: msg.Signal,
			})
		}
	}
}

// broadcast sends to every peer in a room except the sender.
func (l *callLobby) broadcast(roomID, senderID string, msg lobbyMessage) {
	l.mu.RLock()
	targets := make([]*lobbyPeer, 0)
	for id, p := range l.peers {
		if id != senderID && p.roomID == roomID {
			targets = append(targets, p)
		}
	}
	l.mu.RUnlock()

	for _, p := range targets {
		p.send(msg)
	}
}

// relay sends to one peer by id; unknown targets are dropped.
func (l *callLobby) relay(peerID string, msg lobbyMessage) {
	l.mu.RLock()
	target, ok := l.peers[peerID]
	l.mu.RUnlock()
	if ok {
		target.send(msg)
	}
}
