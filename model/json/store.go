package json

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nalipour/MLlab/model"
)

type fileStore struct {
	dir   string
	codec model.EncodeDecoder
}

/*
NewStore builds a model.Store that keeps every model in a file called
<name>.json under the given directory, encoded with the given
model.EncodeDecoder. The directory is created if it does not exist.
*/
func NewStore(dir string, codec model.EncodeDecoder) (model.Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("opening model store at %q: %v", dir, err)
	}
	return &fileStore{dir: dir, codec: codec}, nil
}

func (fs *fileStore) Save(ctx context.Context, name string, m *model.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := fs.codec.Encode(m)
	if err != nil {
		return fmt.Errorf("saving model %q: %v", name, err)
	}
	if err := os.WriteFile(fs.pathFor(name), data, 0644); err != nil {
		return fmt.Errorf("saving model %q: %v", name, err)
	}
	return nil
}

func (fs *fileStore) Load(ctx context.Context, name string) (*model.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fs.pathFor(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading model %q: %v", name, err)
	}
	m, err := fs.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading model %q: %v", name, err)
	}
	return m, nil
}

func (fs *fileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(fs.pathFor(name)); err != nil {
		return fmt.Errorf("deleting model %q: %v", name, err)
	}
	return nil
}

func (fs *fileStore) Close(ctx context.Context) error {
	return nil
}

func (fs *fileStore) pathFor(name string) string {
	return filepath.Join(fs.dir, name+".json")
}
