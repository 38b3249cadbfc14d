package output

import "github.com/chrisdamba/foodataseed/internal/models"

// Sink receives a fully generated dataset. Implementations must process
// tables in the order TablesInImportOrder returns them so foreign keys are
// always satisfiable by the time a referencing table lands.
type Sink interface {
	WriteDataset(ds *models.Dataset) error
	Close() error
}
