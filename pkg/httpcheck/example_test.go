package httpcheck_test

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/bft-labs/httpcheck/pkg/httpcheck"
)

// ExamplePerform probes a local server and prints the raw status line.
func ExamplePerform() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		_, _ = conn.Read(buf)
		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"))
	}()

	req := httpcheck.NewRequest("127.0.0.1", ln.Addr().(*net.TCPAddr).Port)
	req.Path = "/healthz"

	raw, err := httpcheck.Perform(context.Background(), req, 2*time.Second)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.SplitN(raw, "\r\n", 2)[0])

	// Output: HTTP/1.1 200 OK
}
