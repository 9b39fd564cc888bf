package response

type GenerarTXT struct {
	FileName string `json:"file_name"`
}
