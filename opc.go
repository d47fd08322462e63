package powerframe

// This file contains a minimal Open Pixel Control client, enough to send
// "set pixel colors" messages to an fcserver driving fadecandy boards.
// See http://openpixelcontrol.org/ for the protocol.

import (
	"encoding/binary"
	"net"
	"time"

	"github.com/juju/errors"
)

const (
	opcSetPixelColors = 0x00
	opcHeaderLen      = 4
)

// opcMessage is a set pixel colors message for one OPC channel, channel 0
// is a broadcast to every channel the server knows
type opcMessage struct {
	buf []byte
}

func newOPCMessage(channel uint8, pixels int) (msg *opcMessage) {
	length := pixels * 3
	msg = &opcMessage{
		buf: make([]byte, opcHeaderLen+length),
	}
	msg.buf[0] = channel
	msg.buf[1] = opcSetPixelColors
	binary.BigEndian.PutUint16(msg.buf[2:4], uint16(length))
	return msg
}

func (msg *opcMessage) setPixelColor(index int, r, g, b uint8) {
	offset := opcHeaderLen + index*3
	if index < 0 || offset+3 > len(msg.buf) {
		return
	}
	msg.buf[offset] = r
	msg.buf[offset+1] = g
	msg.buf[offset+2] = b
}

func (msg *opcMessage) bytes() []byte {
	return msg.buf
}

// opcSender is the connection frames are written to
type opcSender interface {
	Send(msg []byte) error
	Close() error
}

type opcClient struct {
	conn    net.Conn
	timeout time.Duration
}

func dialOPC(protocol string, address string, timeout time.Duration) (client *opcClient, err error) {
	conn, errGo := net.DialTimeout(protocol, address, timeout)
	if errGo != nil {
		return nil, errors.Annotatef(errGo, "connect to fcserver %s", address)
	}
	return &opcClient{
		conn:    conn,
		timeout: timeout,
	}, nil
}

// Send writes one message, giving up after the client timeout so that a
// stalled server cannot hold up the animation
func (client *opcClient) Send(msg []byte) (err error) {
	if errGo := client.conn.SetWriteDeadline(time.Now().Add(client.timeout)); errGo != nil {
		return errors.Trace(errGo)
	}
	if _, errGo := client.conn.Write(msg); errGo != nil {
		return errors.Trace(errGo)
	}
	return nil
}

func (client *opcClient) Close() error {
	return client.conn.Close()
}
