package export

import(
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
)

// BigQueryPublisher streams one row per exported track into a table, so that exports can be
// compared over time.
type BigQueryPublisher struct {
	Client   *bigquery.Client
	Dataset   string
	Table     string
}

// ParseTableSpec splits "project.dataset.table".
func ParseTableSpec(spec string) (project, dataset, table string, err error) {
	bits := strings.Split(spec, ".")
	if len(bits) != 3 || bits[0] == "" || bits[1] == "" || bits[2] == "" {
		return "", "", "", fmt.Errorf("bigquery table %q is not project.dataset.table", spec)
	}
	return bits[0], bits[1], bits[2], nil
}

func NewBigQueryPublisher(ctx context.Context, spec string) (*BigQueryPublisher, error) {
	project,dataset,table,err := ParseTableSpec(spec)
	if err != nil {
		return nil, err
	}

	client,err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("Creating bigquery client: %v", err)
	}

	return &BigQueryPublisher{Client:client, Dataset:dataset, Table:table}, nil
}

func (p *BigQueryPublisher)Publish(ctx context.Context, b *Bundle) error {
	rows := b.ForBigQuery()
	if len(rows) == 0 { return nil }

	inserter := p.Client.Dataset(p.Dataset).Table(p.Table).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return fmt.Errorf("bigquery insert into %s.%s: %v", p.Dataset, p.Table, err)
	}
	return nil
}

func (p *BigQueryPublisher)Close() error { return p.Client.Close() }
