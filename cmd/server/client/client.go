// Package client provides commands that drive a running sheet server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Output flags
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the sheet server",
	Long:  `Client commands edit and inspect character sheets on a running server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(showCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(attrCmd)
	ClientCmd.AddCommand(classCmd)
	ClientCmd.AddCommand(skillCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createSheetClient creates a sheet service client
func createSheetClient() (*v1alpha1.SheetServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

// invoke calls method and prints the response, either as JSON or through
// render. A spent skill budget is reported through a notifier on stderr.
func invoke(
	cmd *cobra.Command,
	method string,
	fields map[string]interface{},
	render func(cmd *cobra.Command, body []byte) error,
) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return reportError(ctx, cmd, method, err)
	}

	body, err := protojson.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, body)
	}
	return render(cmd, body)
}

func reportError(ctx context.Context, cmd *cobra.Command, method string, err error) error {
	st, ok := status.FromError(err)
	if ok && st.Code() == codes.ResourceExhausted {
		meta := errors.GetMeta(errors.FromGRPCError(err))
		spent, _ := meta["spent"].(float64)
		available, _ := meta["available"].(float64)

		sheet.NewWriterNotifier(cmd.ErrOrStderr()).Notify(ctx, sheet.Notification{
			Kind:      sheet.NotificationBudgetExceeded,
			Message:   st.Message(),
			Spent:     int(spent),
			Available: int(available),
		})
		return fmt.Errorf("%s rejected", method)
	}
	if ok {
		return fmt.Errorf("%s failed: %s: %s", method, st.Code(), st.Message())
	}
	return fmt.Errorf("%s failed: %w", method, err)
}
