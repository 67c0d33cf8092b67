package ws

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/domain"
)

type subscription struct {
	client *Client
	topic  string
}

type envelope struct {
	topic string
	frame ServerFrame
}

// Core is the fan-out hub. A single goroutine owns the topic and client maps;
// all mutation flows through channels, so no locks are needed. Delivery is
// best-effort: a subscriber whose send buffer is full misses the frame.
type Core struct {
	topics  map[string]map[*Client]struct{} // topic -> subscribers
	clients map[*Client]map[string]struct{} // client -> its topics

	register    chan *Client
	unregister  chan *Client
	subscribe   chan subscription
	unsubscribe chan subscription
	broadcast   chan envelope

	upgrader websocket.Upgrader
	logger   *zap.SugaredLogger
}

func NewCore(logger *zap.SugaredLogger) *Core {
	return &Core{
		topics:      make(map[string]map[*Client]struct{}),
		clients:     make(map[*Client]map[string]struct{}),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan subscription),
		broadcast:   make(chan envelope, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (c *Core) Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return c.upgrader.Upgrade(w, r, nil)
}

func (c *Core) Register() chan<- *Client { return c.register }

func (c *Core) Unregister() chan<- *Client { return c.unregister }

func (c *Core) Subscribe() chan<- subscription { return c.subscribe }

func (c *Core) Unsubscribe() chan<- subscription { return c.unsubscribe }

// Publish delivers msg to every connection subscribed to topic. It never
// blocks the caller: frames to a congested hub are dropped.
func (c *Core) Publish(topic string, msg domain.Message) {
	select {
	case c.broadcast <- envelope{topic: topic, frame: NewMessageFrame(topic, msg)}:
	default:
		c.logger.Warnw("fan-out queue full, dropping publish", "topic", topic)
	}
}

// Run owns all hub state until ctx is cancelled.
func (c *Core) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range c.clients {
				c.drop(client)
			}
			return

		case client := <-c.register:
			c.clients[client] = make(map[string]struct{})

		case client := <-c.unregister:
			c.drop(client)

		case sub := <-c.subscribe:
			topics, registered := c.clients[sub.client]
			if !registered {
				continue
			}
			topics[sub.topic] = struct{}{}
			if c.topics[sub.topic] == nil {
				c.topics[sub.topic] = make(map[*Client]struct{})
			}
			c.topics[sub.topic][sub.client] = struct{}{}

		case sub := <-c.unsubscribe:
			c.removeSubscription(sub.client, sub.topic)

		case env := <-c.broadcast:
			for client := range c.topics[env.topic] {
				select {
				case client.send <- env.frame:
				default:
					c.logger.Warnw("subscriber buffer full, dropping frame",
						"client", client.ID, "topic", env.topic)
				}
			}
		}
	}
}

// drop removes a client and all of its subscriptions. Closing the send
// channel stops the client's write pump.
func (c *Core) drop(client *Client) {
	topics, registered := c.clients[client]
	if !registered {
		return
	}
	for topic := range topics {
		c.removeSubscription(client, topic)
	}
	delete(c.clients, client)
	close(client.send)
}

func (c *Core) removeSubscription(client *Client, topic string) {
	if topics, ok := c.clients[client]; ok {
		delete(topics, topic)
	}
	if subscribers, ok := c.topics[topic]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(c.topics, topic)
		}
	}
}
