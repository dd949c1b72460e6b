// Package flatfile lê e grava tabelas CSV com cabeçalho, a fonte de dados do dashboard
package flatfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

var ErrFileNotFound = errors.New("arquivo não encontrado")

type Conn interface {
	ReadTable(file string, out any) error
	WriteTable(file string, header []string, records any) error
	Ping(ctx context.Context) error
}

type Connection struct {
	cfg config.Database
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	conn := &Connection{cfg: cfg}
	if err := conn.Ping(ctx); err != nil {
		return nil, err
	}

	return conn, nil
}

// Ping verifica se o diretório de dados existe
func (c *Connection) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(c.cfg.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrFileNotFound, "diretório de dados %s", c.cfg.DataDir)
		}
		return errors.Wrapf(err, "erro ao acessar diretório de dados %s", c.cfg.DataDir)
	}

	if !info.IsDir() {
		return errors.Errorf("%s não é um diretório", c.cfg.DataDir)
	}

	return nil
}

// ReadTable decodifica todas as linhas do arquivo em out, que deve ser um ponteiro para slice de structs
func (c *Connection) ReadTable(file string, out any) error {
	path := c.cfg.Path(file)

	rows, err := ReadRows(path)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar decoder")
	}

	if err := decoder.Decode(rows); err != nil {
		return errors.Wrapf(err, "erro ao decodificar %s", path)
	}

	return nil
}

// WriteTable substitui o arquivo por header + records de forma atômica (arquivo temporário + rename)
func (c *Connection) WriteTable(file string, header []string, records any) error {
	path := c.cfg.Path(file)

	var rows []map[string]any
	if err := mapstructure.Decode(records, &rows); err != nil {
		return errors.Wrapf(err, "erro ao codificar registros de %s", path)
	}

	lines := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(header))
		for i, column := range header {
			if v, ok := row[column]; ok && v != nil {
				line[i] = fmt.Sprint(v)
			}
		}
		lines = append(lines, line)
	}

	return WriteRows(path, header, lines)
}

// ReadRows lê um CSV com cabeçalho e devolve uma linha por registro, indexada pelo nome da coluna
func ReadRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "tabela %s", path)
		}
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler cabeçalho de %s", path)
	}

	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	rows := make([]map[string]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", path)
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WriteRows grava em um arquivo temporário no mesmo diretório e renomeia sobre o destino
func WriteRows(path string, header []string, lines [][]string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo temporário em %s", dir)
	}
	tmpName := tmp.Name()

	// remove o temporário se algo falhar antes do rename
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "erro ao gravar cabeçalho de %s", path)
	}
	if err := writer.WriteAll(lines); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "erro ao gravar %s", path)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "erro ao sincronizar %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "erro ao fechar %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "erro ao substituir %s", path)
	}
	committed = true

	return nil
}
