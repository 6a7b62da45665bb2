package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/reusee/bfi/logs"
	"github.com/reusee/bfi/nets"
)

// Read returns the program bytes of a source
type Read func(ctx context.Context, src Source) ([]byte, error)

func (Module) Read(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Read {
	return func(ctx context.Context, src Source) (ret []byte, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("read %s %s: %w", src.Kind, src, err)
				return
			}
			logger.DebugContext(ctx, "source",
				"kind", src.Kind,
				"location", src,
				"bytes", len(ret),
			)
		}()

		switch src.Kind {

		case KindInline:
			return []byte(src.Location), nil

		case KindStdin:
			return io.ReadAll(stdin)

		case KindFile:
			return os.ReadFile(src.Location)

		case KindURL:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("%w: %s", ErrFetch, resp.Status)
			}
			return io.ReadAll(resp.Body)

		}

		return nil, fmt.Errorf("unknown source kind: %v", src.Kind)
	}
}
