package parsers

// Document texts modelled on the plain text a PDF extractor yields for the
// corresponding comdirect document templates. Column boundaries are runs of
// two or more spaces.

const dividendUSDText = `Dividendengutschrift

Stück                                               WKN/ISIN
100,000              FOO CORP                       A1B2C3
                     REGISTERED SHARES              US1234567890

USD  1,50   Dividende pro Stück

Bruttobetrag:    USD    150,00
Devisenkurs:     USD/EUR     1,10

Die Gutschrift erfolgt mit Valuta auf Konto
DE12 3456 7890 1234 5678 90    EUR     15.05.2023        EUR      120,00
(Referenz-Nr. 09876543210)
`

const dividendEURText = `Dividendengutschrift

Stück                                               WKN/ISIN
16,000               DEUTSCHE TELEKOM AG            555750
                     NAMENS-AKTIEN O.N.             DE0005557508

EUR  0,70   Dividende pro Stück

Bruttobetrag:    EUR    11,20

Die Gutschrift erfolgt mit Valuta auf Konto
DE12 3456 7890 1234 5678 90    EUR     12.04.2023        EUR      11,20
(Referenz-Nr. 11122233344)
`

const dividendIncomeText = `Ertragsgutschrift aus Wertpapieren

Stück                                               WKN/ISIN
50,000               GLOBAL INCOME FUND             B4C5D6
                     REGISTERED SHARES              US9876543210

USD 1,50 Ausschüttung pro Stück

Bruttobetrag:    USD    75,00
15,000 % Quellensteuer       USD      11,25
Devisenkurs:     USD/EUR     1,10

Die Gutschrift erfolgt mit Valuta auf Konto
DE12 3456 7890 1234 5678 90    EUR     22.05.2023        EUR      55,00
(Referenz-Nr. 55566677788)
`

const tradeBuyText = `Wertpapierkauf
Geschäftstag   :  16.05.2023

Wertpapier-Bezeichnung                                 WPKNR/ISIN
SAP SE                                                 716460
Inhaber-Aktien o.N.                                    DE0007164600

Zum Kurs von       St.  100      EUR  123,45
Ausführungsplatz   :   FRANKFURT

 Provision              : EUR  9,90
 Summe Entgelte         : EUR  12,40

DE98 7654 3210 9876 5432 10    EUR     16.05.2023        EUR   12.357,40
`

const tradeSellText = `Wertpapierverkauf
Geschäftstag   :  17.05.2023

Wertpapier-Bezeichnung                                 WPKNR/ISIN
SAP SE                                                 716460
Inhaber-Aktien o.N.                                    DE0007164600

Zum Kurs von       St.  100      EUR  123,45
Ausführungsplatz   :   XETRA

 Summe Entgelte         : EUR  12,40

DE98 7654 3210 9876 5432 10    EUR     17.05.2023        EUR   12.332,60
Zu Ihren Gunsten nach Steuern: EUR 12.200,00
`

const taxStatementText = `Steuerliche Behandlung: Ausländische Dividende

DE12 3456 7890 1234 5678 90    EUR     20.05.2023        EUR      85,00
Referenznummer 09876543210

Zu Ihren Gunsten vor Steuern            EUR               100,00
Kapitalertragsteuer
Zu Ihren Gunsten nach Steuern           EUR                85,00
`

const accountReportText = `Finanzreport Nr. 03 per 31.05.2023
Ihr Vermögensstatus auf einen Blick

Kontoübersicht
Kontoart                 Kontonummer             Saldo in EUR
Girokonto                1234567890              +3.445,68
Tagesgeld PLUS           1234567891              +10.000,00
Depot                                            +5.432,10
Gesamtsaldo                                      +18.877,78

Girokonto
Buchungstag   Wertstellung   Vorgang
01.02.2023    01.02.2023     Lastschrift     REWE SAGT DANKE MANNHEIM      -54,32
28.02.2023    28.02.2023     Übertrag        Gehalt Februar                +2.500,00
Alter Saldo                                  +1.000,00
Neuer Saldo                                  +3.445,68
`
