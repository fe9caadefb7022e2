package clients

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"ProjectAdminAI/app/runtime"
)

var _ Interface = &ConsoleClient{}

// ConsoleClient drives the assistant from stdin. Each line is answered
// synchronously so the prompt stays in order.
type ConsoleClient struct {
	Client
	in  *bufio.Reader
	out *os.File
}

func NewConsoleClient() *ConsoleClient {
	return &ConsoleClient{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (c *ConsoleClient) Subscribe(rt *runtime.Runtime) {
	c.runtime = rt
	go c.loop()
}

func (c *ConsoleClient) loop() {
	fmt.Fprintln(c.out, "Hello! How can I assist you with your project administration needs today?")
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil {
			return
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "exit") || strings.EqualFold(text, "quit") {
			fmt.Fprintln(c.out, "Goodbye!")
			return
		}
		fmt.Fprintln(c.out, c.runtime.Answer(context.Background(), text))
	}
}
