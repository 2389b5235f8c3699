// dpquery sends a single getservers request to a dpmaster-compatible master
// server and prints every server address in the response.
//
// Usage:
//
//	dpquery --master-server master.example.com:27950 --game-name Nexuiz --protocol-number 3
package main

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpmaster-go/dpwire/dpwire"
	"github.com/dpmaster-go/dpwire/frame"
)

type queryFlags struct {
	masterServer   string
	gameName       string
	protocolNumber uint32
	gameType       string
	empty          bool
	full           bool
	timeout        time.Duration
}

func main() {
	flags := &queryFlags{}

	root := &cobra.Command{
		Use:   "dpquery",
		Short: "Query a dpmaster-compatible master server for its registered game servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(flags)
		},
	}

	root.Flags().StringVar(&flags.masterServer, "master-server", "", "master server address, host:port (required)")
	root.Flags().StringVar(&flags.gameName, "game-name", "", "game name to filter by (optional)")
	root.Flags().Uint32Var(&flags.protocolNumber, "protocol-number", 0, "protocol revision to request")
	root.Flags().StringVar(&flags.gameType, "game-type", "", "gametype filter option (optional)")
	root.Flags().BoolVar(&flags.empty, "empty", false, "include servers with zero players")
	root.Flags().BoolVar(&flags.full, "full", false, "include servers at max capacity")
	root.Flags().DurationVar(&flags.timeout, "timeout", 5*time.Second, "how long to wait for a response")
	_ = root.MarkFlagRequired("master-server")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runQuery(flags *queryFlags) error {
	msg, err := buildGetServers(flags)
	if err != nil {
		return fmt.Errorf("dpquery: %w", err)
	}

	addr, err := net.ResolveUDPAddr("udp4", flags.masterServer)
	if err != nil {
		return fmt.Errorf("dpquery: resolve master server address: %w", err)
	}

	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return fmt.Errorf("dpquery: dial master server: %w", err)
	}
	defer conn.Close()

	adapter := frame.NewAdapter()
	var out bytes.Buffer
	if err := adapter.Encode(msg, &out); err != nil {
		return fmt.Errorf("dpquery: encode request: %w", err)
	}
	if _, err := conn.Write(out.Bytes()); err != nil {
		return fmt.Errorf("dpquery: send request: %w", err)
	}

	return readResponses(conn, adapter, flags.timeout)
}

func buildGetServers(flags *queryFlags) (dpwire.GetServers, error) {
	var gameName *dpwire.GameName
	if flags.gameName != "" {
		name, err := dpwire.NewGameName([]byte(flags.gameName))
		if err != nil {
			return dpwire.GetServers{}, fmt.Errorf("invalid game name: %w", err)
		}
		gameName = &name
	}

	var gametype *dpwire.GameType
	if flags.gameType != "" {
		gt, err := dpwire.NewGameType([]byte(flags.gameType))
		if err != nil {
			return dpwire.GetServers{}, fmt.Errorf("invalid game type: %w", err)
		}
		gametype = &gt
	}

	filter := dpwire.NewFilterOptions(gametype, flags.empty, flags.full)
	return dpwire.NewGetServers(gameName, dpwire.ProtocolNumber(flags.protocolNumber), filter), nil
}

// readResponses reads getserversResponse datagrams until the EOT sentinel
// arrives or timeout elapses, printing each server address as it goes. A
// dpmaster reply to a single getservers request is typically several
// datagrams: all but the last carry eot=false.
func readResponses(conn *net.UDPConn, adapter *frame.Adapter, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 16384)

	for {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return fmt.Errorf("dpquery: set read deadline: %w", err)
		}
		n, err := conn.Read(buf)
		if err != nil {
			return fmt.Errorf("dpquery: read response: %w", err)
		}

		var datagram bytes.Buffer
		datagram.Write(buf[:n])
		resp, ok, err := adapter.Decode(&datagram)
		if err != nil {
			return fmt.Errorf("dpquery: decode response: %w", err)
		}
		if !ok {
			continue
		}

		for _, server := range resp.Servers() {
			fmt.Println(server.String())
		}
		if resp.EOT() {
			return nil
		}
	}
}
