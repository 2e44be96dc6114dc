package help

const ColdstartYAML = `# textfreq Quick Start

commands:
  count_one_file: |
    textfreq count --paths "books/moby.txt"

  count_a_directory: |
    textfreq count --paths "books/**/*.txt" --workers 4

  machine_readable: |
    textfreq count --paths "books/*.txt" --json --quiet

  top_words_without_stopwords: |
    textfreq count --paths "books/*.txt" --top 25 --ignore-common

  download_books: |
    textfreq download --urls "https://www.gutenberg.org/files/2701/2701-0.txt" --output-dir books

  serve_http: |
    textfreq serve --addr :8080
    # then: curl -X POST localhost:8080/count -d '{"files":["books/moby.txt"]}'

  run_history: |
    textfreq history
    textfreq history 3

flags:
  workers: "Max concurrent files (default: number of CPUs)"
  progress-every: "Log scan progress every N lines"
  worker-timeout: "Per-file deadline, e.g. 30s"
  detect-lang: "Record each file's detected language"

notes:
  - "Failed files never abort a run; they are listed with an error kind."
  - "Frequency data is never persisted; history stores run metadata only."
`
