package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-engine/engine"
	"holdem-engine/models"
)

// TCPServer exposes the table manager over newline-delimited JSON.
// One command per line in, one response per line out; accepted state
// changes are additionally pushed as snapshot events.
type TCPServer struct {
	address      string
	listener     net.Listener
	handler      *CommandHandler
	tableManager *engine.TableManager
	log          *logrus.Logger
	conn         net.Conn
	mu           sync.Mutex
	stopChan     chan struct{}
}

func NewTCPServer(address string, tableManager *engine.TableManager, defaults models.TableConfig, log *logrus.Logger) *TCPServer {
	return &TCPServer{
		address:      address,
		handler:      NewCommandHandler(tableManager, defaults),
		tableManager: tableManager,
		log:          log,
		stopChan:     make(chan struct{}),
	}
}

func (s *TCPServer) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	s.listener = listener
	s.log.WithField("address", s.address).Info("tcp server listening")

	go s.eventBroadcaster()

	for {
		select {
		case <-s.stopChan:
			return nil
		default:
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.stopChan:
					return nil
				default:
				}
				s.log.WithError(err).Error("accept failed")
				continue
			}

			s.log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")
			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()

			go s.handleConnection(conn)
		}
	}
}

func (s *TCPServer) handleConnection(conn net.Conn) {
	defer func() {
		conn.Close()
		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		s.log.Info("client disconnected")
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()

		var cmd models.Command
		if err := json.Unmarshal(line, &cmd); err != nil {
			s.sendJSON(conn, models.Response{
				Success: false,
				Error:   fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}

		s.sendJSON(conn, s.handler.Handle(cmd))
	}

	if err := scanner.Err(); err != nil {
		s.log.WithError(err).Warn("connection read error")
	}
}

func (s *TCPServer) sendJSON(conn net.Conn, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.WithError(err).Error("marshal failed")
		return
	}

	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.log.WithError(err).Warn("write failed")
	}
}

func (s *TCPServer) eventBroadcaster() {
	eventChan := s.tableManager.EventChannel()
	for {
		select {
		case <-s.stopChan:
			return
		case event := <-eventChan:
			s.mu.Lock()
			conn := s.conn
			s.mu.Unlock()
			if conn != nil {
				s.sendJSON(conn, event)
			}
		}
	}
}

func (s *TCPServer) Stop() {
	close(s.stopChan)
	if s.listener != nil {
		s.listener.Close()
	}
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.mu.Unlock()
}
